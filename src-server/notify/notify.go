package notify

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// Notice is one toast: a message, how loud it is, and optionally an action
// the reader can hit to retry whatever failed.
type Notice struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	RetryPath string    `json:"retryPath,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

const recentCap = 20

// Center keeps the recent notice feed and escalates error-severity notices
// to a Discord webhook when one is configured.
type Center struct {
	mu     sync.Mutex
	recent []Notice

	webhookID    string
	webhookToken string
	dgSession    *discordgo.Session
}

func NewCenter(webhookID, webhookToken string) *Center {
	c := &Center{}
	if webhookID == "" || webhookToken == "" {
		return c
	}

	// webhook execution is plain REST, no bot token needed
	dgSession, err := discordgo.New("")
	if err != nil {
		slog.Warn("can't create discord session, operator alerts disabled", "error", err)
		return c
	}
	c.webhookID = webhookID
	c.webhookToken = webhookToken
	c.dgSession = dgSession
	return c
}

// Push records a notice and returns it. retryPath may be blank.
func (c *Center) Push(message string, severity Severity, retryPath string) Notice {
	notice := Notice{
		ID:        uuid.New(),
		Message:   message,
		Severity:  severity,
		RetryPath: retryPath,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.recent = append([]Notice{notice}, c.recent...)
	if len(c.recent) > recentCap {
		c.recent = c.recent[:recentCap]
	}
	c.mu.Unlock()

	if severity == SeverityError && c.dgSession != nil {
		go c.alert(notice)
	}

	return notice
}

// Recent returns the feed, newest first.
func (c *Center) Recent() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Notice(nil), c.recent...)
}

func (c *Center) alert(notice Notice) {
	if _, err := c.dgSession.WebhookExecute(
		c.webhookID,
		c.webhookToken,
		false,
		&discordgo.WebhookParams{
			Content: fmt.Sprintf(":warning: %s", notice.Message),
		}); err != nil {
		slog.Warn("can't send operator alert", "error", err)
	}
}
