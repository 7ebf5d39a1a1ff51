package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/config"
	"newsdesk/internal/domain"
	"newsdesk/internal/metrics"
)

const (
	listPageSize    = 10
	listTitleLength = 80
)

// Outcome describes what the router did with one inbound message.
// SendErr is set when the reply could not be delivered; the message is still considered handled.
type Outcome struct {
	Command    string
	Authorized bool
	Reply      string
	SendErr    error
}

// Replied reports whether a reply was produced and delivered.
func (o Outcome) Replied() bool {
	return o.Reply != "" && o.SendErr == nil
}

type command struct {
	name   string
	public bool
	match  func(text string) bool
	run    func(ctx context.Context, text string, authorized bool) string
}

// CommandRouter turns admin chat messages into post store operations.
// Commands are evaluated in order and the first match wins.
type CommandRouter struct {
	posts     PostStore
	messenger Messenger
	publisher Publisher
	admins    map[int64]struct{}
	config    config.PostsConfig
	now       func() time.Time
	logger    *slog.Logger
	commands  []command
}

// NewCommandRouter builds a router. publisher may be nil, in which case no post events are emitted.
func NewCommandRouter(
	posts PostStore,
	messenger Messenger,
	publisher Publisher,
	logger *slog.Logger,
	adminIDs []int64,
	cfg config.PostsConfig,
) *CommandRouter {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	r := &CommandRouter{
		posts:     posts,
		messenger: messenger,
		publisher: publisher,
		admins:    admins,
		config:    cfg,
		now:       time.Now,
		logger:    logger.With("component", "command_router"),
	}

	r.commands = []command{
		{name: "start", public: true, match: equals(cmdStart), run: r.start},
		{name: "news", match: hasPrefix(cmdNews), run: r.createPost},
		{name: "list", match: equals(cmdList), run: r.listPosts},
		{name: "publish", match: hasPrefix(cmdPublish), run: r.publishPost},
		{name: "help", match: equals(cmdHelp), run: r.help},
	}

	return r
}

func equals(token string) func(string) bool {
	return func(text string) bool { return text == token }
}

func hasPrefix(token string) func(string) bool {
	return func(text string) bool { return strings.HasPrefix(text, token) }
}

// Handle classifies msg, runs the matching command and sends at most one reply.
// Unauthorized senders are answered with a rejection unless the command is public.
// Unmatched messages from admins are ignored.
func (r *CommandRouter) Handle(ctx context.Context, msg domain.InboundMessage) Outcome {
	text := strings.TrimSpace(msg.Text)
	_, authorized := r.admins[msg.ChatID]
	out := Outcome{Authorized: authorized}

	logger := r.logger.With("chat_id", msg.ChatID, "authorized", authorized)

	cmd, matched := r.classify(text)
	if matched {
		out.Command = cmd.name
	}
	metrics.CommandsTotal.WithLabelValues(commandLabel(out.Command), strconv.FormatBool(authorized)).Inc()

	switch {
	case matched && (authorized || cmd.public):
		out.Reply = cmd.run(ctx, text, authorized)
	case !authorized:
		logger.Warn("rejected message from unauthorized sender", "command", out.Command)
		out.Reply = replyNotAdmin
	default:
		logger.Debug("ignoring unmatched message")
		return out
	}

	if err := r.messenger.SendMessage(ctx, msg.ChatID, out.Reply); err != nil {
		out.SendErr = err
		logger.Error("failed to send reply", "command", out.Command, "error", err)
		return out
	}

	logger.Info("command handled", "command", out.Command)
	return out
}

func (r *CommandRouter) classify(text string) (command, bool) {
	for _, cmd := range r.commands {
		if cmd.match(text) {
			return cmd, true
		}
	}
	return command{}, false
}

func commandLabel(name string) string {
	if name == "" {
		return "none"
	}
	return name
}

func (r *CommandRouter) start(_ context.Context, _ string, authorized bool) string {
	if authorized {
		return replyAdminHelp
	}
	return replyGreeting
}

func (r *CommandRouter) help(_ context.Context, _ string, _ bool) string {
	return replyAdminHelp
}

// createPost expects "/news title|body|image"; the image is optional.
func (r *CommandRouter) createPost(ctx context.Context, text string, _ bool) string {
	fields := strings.SplitN(strings.TrimPrefix(text, cmdNews), fieldSeparator, 3)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
		return replyNewsUsage
	}

	imageURL := r.config.DefaultImageURL
	if len(fields) == 3 && fields[2] != "" {
		imageURL = fields[2]
	}

	post := &domain.Post{
		Title:    fields[0],
		Content:  fields[1],
		Excerpt:  domain.Excerpt(fields[1]),
		ImageURL: imageURL,
		Status:   domain.PostStatusDraft,
		Language: r.config.DefaultLanguage,
	}

	if err := r.posts.Create(ctx, post); err != nil {
		r.logger.Error("failed to create post", "error", err)
		return storeErrorReply(err)
	}

	r.logger.Info("post created", "post_id", post.ID)
	r.publishEvent(ctx, post, domain.PostActionCreated)

	return fmt.Sprintf(replyPostCreated, escapeMarkdown(post.Title), post.ID, post.ID)
}

func (r *CommandRouter) listPosts(ctx context.Context, _ string, _ bool) string {
	posts, err := r.posts.ListRecent(ctx, listPageSize)
	if err != nil {
		r.logger.Error("failed to list posts", "error", err)
		return storeErrorReply(err)
	}

	if len(posts) == 0 {
		return replyNoPosts
	}
	if len(posts) > listPageSize {
		posts = posts[:listPageSize]
	}

	var sb strings.Builder
	sb.WriteString(replyListHeader)
	for i, p := range posts {
		fmt.Fprintf(&sb, replyListItem, i+1, escapeMarkdown(domain.Truncate(p.Title, listTitleLength)), p.Status, p.ID, p.CreatedAt.Format(dateLayout))
	}
	return sb.String()
}

func (r *CommandRouter) publishPost(ctx context.Context, text string, _ bool) string {
	id, err := uuid.Parse(strings.TrimSpace(strings.TrimPrefix(text, cmdPublish)))
	if err != nil {
		return replyPostNotFound
	}

	post, err := r.posts.Publish(ctx, id, r.now().UTC())
	if errors.Is(err, domain.ErrPostNotFound) {
		return replyPostNotFound
	}
	if err != nil {
		r.logger.Error("failed to publish post", "post_id", id, "error", err)
		return storeErrorReply(err)
	}

	r.logger.Info("post published", "post_id", post.ID)
	r.publishEvent(ctx, post, domain.PostActionPublished)

	return fmt.Sprintf(replyPostPublished, escapeMarkdown(post.Title))
}

func storeErrorReply(err error) string {
	return fmt.Sprintf(replyStoreError, escapeMarkdown(err.Error()))
}

func (r *CommandRouter) publishEvent(ctx context.Context, post *domain.Post, action domain.PostAction) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.Publish(ctx, post, action); err != nil {
		metrics.PostEventsFailed.WithLabelValues(string(action)).Inc()
		r.logger.Warn("failed to publish post event", "post_id", post.ID, "action", action, "error", err)
	}
}
