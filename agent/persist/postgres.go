package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
)

// PostgresConfig selects the production outcome store. When DSN is empty the
// deployment falls back to the JSONL file sink.
type PostgresConfig struct {
	DSN     string        `envconfig:"DSN" split_words:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"5s"`
}

type outcomeRow struct {
	bun.BaseModel `bun:"table:conversation_outcomes,alias:co"`

	ID                 int64     `bun:"id,pk,autoincrement"`
	CaseID             string    `bun:"case_id,notnull"`
	CustomerName       string    `bun:"customer_name,notnull"`
	SecurityIdentifier string    `bun:"security_identifier"`
	TransactionAmount  string    `bun:"transaction_amount"`
	MerchantName       string    `bun:"merchant_name"`
	Location           string    `bun:"location"`
	OccurredAt         string    `bun:"occurred_at"`
	FinalStatus        string    `bun:"final_status,notnull"`
	OutcomeNote        string    `bun:"outcome_note"`
	CreatedAt          time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// PostgresSink appends terminal-event records to Postgres through bun.
type PostgresSink struct {
	db      *bun.DB
	timeout time.Duration
}

var _ contractx.OutcomeSink = (*PostgresSink)(nil)

func NewPostgresSink(cfg PostgresConfig) (*PostgresSink, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &PostgresSink{db: db, timeout: timeout}, nil
}

func (s *PostgresSink) Append(ctx context.Context, rec contractx.OutcomeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	row := &outcomeRow{
		CaseID:             rec.CaseID,
		CustomerName:       rec.CustomerName,
		SecurityIdentifier: rec.SecurityIdentifier,
		TransactionAmount:  rec.TransactionAmount,
		MerchantName:       rec.MerchantName,
		Location:           rec.Location,
		OccurredAt:         rec.Timestamp,
		FinalStatus:        rec.FinalStatus,
		OutcomeNote:        rec.OutcomeNote,
	}
	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("%w: insert outcome case_id=%s: %v", contractx.ErrPersistence, rec.CaseID, err)
	}
	return nil
}

// Migrate creates the outcomes table if missing. Called once at worker start.
func (s *PostgresSink) Migrate(ctx context.Context) error {
	_, err := s.db.NewCreateTable().Model((*outcomeRow)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return fmt.Errorf("create conversation_outcomes table: %w", err)
	}
	return nil
}

func (s *PostgresSink) Close() error {
	return s.db.Close()
}
