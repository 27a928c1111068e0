// Package digest sends each family a morning Telegram summary of the
// day's schedule.
package digest

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron/v3"

	"github.com/hray3182/FamilyBoard/internal/models"
	"github.com/hray3182/FamilyBoard/internal/repository"
	"github.com/hray3182/FamilyBoard/internal/schedule"
)

type Digest struct {
	api        *tgbotapi.BotAPI
	familyRepo *repository.FamilyRepository
	eventRepo  *repository.EventRepository
	cronSpec   string
	notifyCh   chan struct{}
}

func New(api *tgbotapi.BotAPI, familyRepo *repository.FamilyRepository, eventRepo *repository.EventRepository, cronSpec string) *Digest {
	return &Digest{
		api:        api,
		familyRepo: familyRepo,
		eventRepo:  eventRepo,
		cronSpec:   cronSpec,
		notifyCh:   make(chan struct{}, 1),
	}
}

// Notify triggers an immediate run. Non-blocking if one is already pending.
func (d *Digest) Notify() {
	select {
	case d.notifyCh <- struct{}{}:
	default:
	}
}

// Start blocks until the context is cancelled, running the digest on the
// configured cron schedule and on Notify.
func (d *Digest) Start(ctx context.Context) error {
	c := cron.New()
	_, err := c.AddFunc(d.cronSpec, d.Notify)
	if err != nil {
		return fmt.Errorf("invalid digest cron %q: %w", d.cronSpec, err)
	}
	c.Start()
	defer c.Stop()

	log.Printf("Digest started (cron %q)", d.cronSpec)
	for {
		select {
		case <-ctx.Done():
			log.Println("Digest stopped")
			return ctx.Err()
		case <-d.notifyCh:
			d.run(ctx)
		}
	}
}

func (d *Digest) run(ctx context.Context) {
	families, err := d.familyRepo.GetWithDigestChat(ctx)
	if err != nil {
		log.Printf("digest: load families: %v", err)
		return
	}

	today := time.Now()
	for _, fam := range families {
		if fam.DigestChatID == nil {
			continue
		}
		if err := d.sendFamilyDigest(ctx, fam, *fam.DigestChatID, today); err != nil {
			log.Printf("digest: family %s: %v", fam.FamilyID, err)
		}
	}
}

func (d *Digest) sendFamilyDigest(ctx context.Context, fam *models.Family, chatID int64, today time.Time) error {
	events, err := d.eventRepo.GetByDateRange(ctx, fam.FamilyID, today, today)
	if err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, FormatDay(fam.Name, today, events))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	_, err = d.api.Send(msg)
	return err
}

// FormatDay renders one day's events as a MarkdownV2 message, sorted by
// start time. Events with unreadable clocks are listed last without times.
func FormatDay(familyName string, day time.Time, events []*models.Event) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s* \\- %s\n\n",
		escape(familyName),
		escape(day.Format("Monday, 02.01.2006"))))

	if len(events) == 0 {
		sb.WriteString("No appointments today\\.")
		return sb.String()
	}

	sorted := make([]*models.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return startKey(sorted[i]) < startKey(sorted[j])
	})

	for _, e := range sorted {
		start, okStart := schedule.ParseClock(e.StartTime)
		end, okEnd := schedule.ParseClock(e.EndTime)
		if okStart && okEnd {
			sb.WriteString(fmt.Sprintf("*%s \\- %s* %s",
				escape(start.String()), escape(end.String()), escape(e.Title)))
		} else {
			sb.WriteString(fmt.Sprintf("*%s*", escape(e.Title)))
		}
		if e.Person != "" {
			sb.WriteString(fmt.Sprintf(" \\(%s\\)", escape(e.Person)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// startKey orders events by start minute; unreadable clocks sort last.
func startKey(e *models.Event) int {
	c, ok := schedule.ParseClock(e.StartTime)
	if !ok {
		return 24 * 60
	}
	return c.Minutes()
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}
