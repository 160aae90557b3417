package record

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalysisRecord is the persisted audit row for one request through the
// gateway. RawAnswer is the unfiltered upstream output; VisibleAnswer is
// what the caller was actually shown (they differ on BLOCK).
type AnalysisRecord struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt          time.Time `json:"timestamp"`
	Prompt             string    `json:"prompt"`
	RawAnswer          string    `json:"raw_answer"`
	VisibleAnswer      string    `json:"visible_answer"`
	Domain             string    `json:"domain"`
	RiskScore          int       `json:"risk_score"`
	RAGStatus          string    `json:"rag_status"`
	ContradictionCheck string    `json:"contradiction_check"`
	Action             string    `json:"action"`
	Explanation        string    `json:"explanation"`
	TrustScore         float64   `json:"trust_score"`
	WarningText        string    `json:"warning_text,omitempty"`
}

func (r *AnalysisRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	return nil
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore --with-expecter

type Repository interface {
	Save(ctx context.Context, rec *AnalysisRecord) error
	Get(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error)
	// List returns all records ordered by timestamp descending.
	List(ctx context.Context) ([]AnalysisRecord, error)
}
