package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/Lanqingsong/DailyFlow/internal/journal"
	"github.com/Lanqingsong/DailyFlow/internal/models"
)

type RecordAddCmd struct {
	SubCategory string   `arg:"" help:"Subcategory id or name."`
	Date        string   `short:"D" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
	Duration    int      `short:"d" help:"Duration in minutes."`
	Value       float64  `short:"v" help:"Metric value (for number-measured subcategories)."`
	Unit        string   `short:"u" help:"Metric unit."`
	Note        string   `short:"n" help:"Free-text note."`
	Image       []string `help:"Image file to attach (repeatable)." type:"existingfile"`
	Audio       []string `help:"Audio file to attach (repeatable)." type:"existingfile"`
}

func (c *RecordAddCmd) Run(ctx *Context) error {
	if err := ctx.activate(); err != nil {
		return err
	}

	date, err := parseDay(c.Date)
	if err != nil {
		return err
	}
	sub, err := resolveSubCategory(ctx.Session.Current(), c.SubCategory)
	if err != nil {
		return err
	}

	media, err := loadMedia(ctx, c.Image, c.Audio)
	if err != nil {
		return err
	}

	rec, err := ctx.Session.AddRecord(journal.RecordInput{
		Date:            date,
		SubCategoryID:   sub.ID,
		CategoryID:      sub.CategoryID,
		DurationMinutes: c.Duration,
		MetricValue:     c.Value,
		MetricUnit:      c.Unit,
		Note:            c.Note,
		Media:           media,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s on %s (ID: %s)\n", sub.Name, date, rec.ID)
	return nil
}

// loadMedia reads and encodes attachments. The picker guard is held
// while files are open so the read cannot race an auto-lock signal.
func loadMedia(ctx *Context, images, audio []string) ([]models.RecordMedia, error) {
	if len(images) == 0 && len(audio) == 0 {
		return nil, nil
	}

	ctx.Session.BeginExternalPicker()
	defer ctx.Session.EndExternalPicker()

	var media []models.RecordMedia
	add := func(paths []string, kind models.MediaKind) error {
		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read attachment %s: %w", path, err)
			}
			media = append(media, models.RecordMedia{
				Kind:      kind,
				Data:      base64.StdEncoding.EncodeToString(data),
				Timestamp: time.Now().UnixMilli(),
			})
		}
		return nil
	}
	if err := add(images, models.MediaImage); err != nil {
		return nil, err
	}
	if err := add(audio, models.MediaAudio); err != nil {
		return nil, err
	}
	return media, nil
}

type RecordDeleteCmd struct {
	ID string `arg:"" help:"Record id."`
}

func (c *RecordDeleteCmd) Run(ctx *Context) error {
	if err := ctx.activate(); err != nil {
		return err
	}
	if err := ctx.Session.DeleteRecord(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted record %s\n", c.ID)
	return nil
}
