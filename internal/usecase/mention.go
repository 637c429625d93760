package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/tolko/rp-reports/internal/domain"
	"github.com/tolko/rp-reports/internal/repo"
)

const dateInputLayout = "2006-01-02"

// MentionInput carries mention fields as submitted. Reach and AVEValue
// stay raw strings so supplied non-numeric values can be rejected at
// creation while absent ones coerce to zero.
type MentionInput struct {
	ClientID        int
	PublicationDate string
	MediaName       string
	Reporter        string
	Title           string
	KeyMessage      string
	Reach           string
	AVEValue        string
	Tier            string
	Sentiment       string
	MediaType       string
}

// MentionUseCase handles mention CRUD and the creation-time validation.
type MentionUseCase struct {
	mentions repo.MentionRepo
	reports  repo.ReportRepo
	log      *log.Helper
}

// NewMentionUseCase creates the mention business logic instance.
func NewMentionUseCase(mentions repo.MentionRepo, reports repo.ReportRepo, logger log.Logger) *MentionUseCase {
	return &MentionUseCase{
		mentions: mentions,
		reports:  reports,
		log:      log.NewHelper(logger),
	}
}

// ListAll returns every mention across reports for the admin table,
// newest publication first.
func (uc *MentionUseCase) ListAll(ctx context.Context) ([]domain.Mention, error) {
	return uc.mentions.ListAll(ctx)
}

// Create validates the input, attaches the mention to the client's
// current report and stores it. Validation failures list every violation
// and persist nothing.
func (uc *MentionUseCase) Create(ctx context.Context, in MentionInput) (int, error) {
	report, err := uc.reports.FindCurrentByClient(ctx, in.ClientID)
	if err != nil {
		return 0, err
	}

	if violations := validateMention(in); len(violations) > 0 {
		return 0, validationError(violations)
	}

	m := uc.toMention(in)
	m.ReportID = report.ID
	return uc.mentions.InsertMention(ctx, &m)
}

// Update replaces the mention's fields. Numeric fields coerce to zero
// here rather than failing; only creation rejects bad numbers.
func (uc *MentionUseCase) Update(ctx context.Context, id int, in MentionInput) error {
	m := uc.toMention(in)
	return uc.mentions.UpdateMention(ctx, id, &m)
}

// Delete removes a mention by id.
func (uc *MentionUseCase) Delete(ctx context.Context, id int) error {
	return uc.mentions.DeleteMention(ctx, id)
}

func (uc *MentionUseCase) toMention(in MentionInput) domain.Mention {
	pub, err := time.Parse(dateInputLayout, in.PublicationDate)
	if err != nil {
		pub = time.Time{}
	}
	return domain.Mention{
		PublicationDate: pub,
		MediaName:       in.MediaName,
		Reporter:        in.Reporter,
		Title:           in.Title,
		KeyMessage:      in.KeyMessage,
		Reach:           coerceInt(in.Reach),
		AVEValue:        coerceFloat(in.AVEValue),
		Tier:            in.Tier,
		Sentiment:       in.Sentiment,
		MediaType:       in.MediaType,
	}
}

func validateMention(in MentionInput) map[string]string {
	violations := map[string]string{}
	if strings.TrimSpace(in.MediaName) == "" {
		violations["media_name"] = "media name is required"
	}
	if strings.TrimSpace(in.Title) == "" {
		violations["title"] = "title is required"
	}
	if strings.TrimSpace(in.KeyMessage) == "" {
		violations["key_message"] = "key message is required"
	}
	if in.PublicationDate == "" {
		violations["publication_date"] = "publication date is required"
	} else if _, err := time.Parse(dateInputLayout, in.PublicationDate); err != nil {
		violations["publication_date"] = "publication date must be a valid date"
	}
	if in.Reach != "" {
		if _, err := strconv.ParseInt(in.Reach, 10, 64); err != nil {
			violations["reach"] = "reach must be a valid number"
		}
	}
	if in.AVEValue != "" {
		if _, err := strconv.ParseFloat(in.AVEValue, 64); err != nil {
			violations["ave_value"] = "ave value must be a valid number"
		}
	}
	return violations
}

func validationError(violations map[string]string) error {
	return errors.BadRequest("VALIDATION_FAILED", "mention validation failed").
		WithMetadata(violations)
}

// coerceInt parses a numeric string, normalizing absent or invalid
// values to zero.
func coerceInt(raw string) int64 {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func coerceFloat(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
