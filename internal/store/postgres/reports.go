package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/lostfound/internal/common"
	"github.com/dmitrijs2005/lostfound/internal/models"
	"github.com/dmitrijs2005/lostfound/internal/store"
)

// CreateReport inserts the report under a freshly minted id.
func (s *Store) CreateReport(ctx context.Context, report models.Report) (string, error) {
	id := uuid.NewString()

	query := `INSERT INTO reports (id, reported_item_id, title, description, location, date, reported_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.db.ExecContext(ctx, query,
		id, report.ReportedItemID, report.Title, report.Desc, report.Location, report.Date, report.ReportedAt)
	if err != nil {
		return "", unavailable("insert report", err)
	}
	return id, nil
}

// DeleteReport removes the report. A missing id returns common.ErrorNotFound.
func (s *Store) DeleteReport(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return unavailable("delete report", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// ListReports returns the full collection, reportedAt descending. RFC3339
// strings order correctly as text.
func (s *Store) ListReports(ctx context.Context) ([]models.Report, error) {
	query := `SELECT id, reported_item_id, title, description, location, date, reported_at
			FROM reports ORDER BY reported_at DESC, id ASC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, unavailable("select reports", err)
	}
	defer rows.Close()

	var result []models.Report
	for rows.Next() {
		var report models.Report
		if err := rows.Scan(
			&report.ID, &report.ReportedItemID, &report.Title, &report.Desc,
			&report.Location, &report.Date, &report.ReportedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WatchReports subscribes to report snapshots.
func (s *Store) WatchReports(ctx context.Context) (*store.Subscription[models.Report], error) {
	s.reportsOnce.Do(func() {
		go s.listen(s.lifeCtx, common.ChannelReports, s.publishReports)
	})

	sub := s.reports.Subscribe()

	snapshot, err := s.ListReports(ctx)
	if err != nil {
		sub.Cancel()
		return nil, err
	}
	sub.Send(snapshot)

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			sub.Cancel()
		}()
	}
	return sub, nil
}

func (s *Store) publishReports(ctx context.Context) {
	snapshot, err := s.ListReports(ctx)
	if err != nil {
		s.log.Warn(ctx, "skipping report snapshot publish", "error", err)
		return
	}
	s.reports.Publish(snapshot)
}
