package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a submission id does not exist.
var ErrNotFound = errors.New("form not found")

// Record is the common surface the service needs from a submission entity.
type Record interface {
	GetID() string
	GetStatus() string
}

// ListQuery carries filter, pagination and sort parameters for List.
type ListQuery struct {
	Page     int
	Limit    int
	Status   string
	Position string
	SortBy   string
	Order    string
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type PositionCount struct {
	Position string `json:"position"`
	Count    int64  `json:"count"`
}

// Stats mirrors the stats/overview payload. ByStatus is zero-filled over the
// full enum; ByPosition only lists observed values.
type Stats struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"byStatus"`
	ByPosition []PositionCount  `json:"byPosition"`
}

// FormService implements the shared operation set over one submission table.
// T is the entity type, P its pointer type. Both form collections use the
// same service parametrized with their own position column and status enum.
type FormService[T any, P interface {
	*T
	Record
}] struct {
	db             *gorm.DB
	positionColumn string
	statuses       []string
	sortColumns    map[string]string

	afterCreate       []func(P)
	afterStatusChange []func(record P, oldStatus, newStatus string)
}

func NewFormService[T any, P interface {
	*T
	Record
}](db *gorm.DB, positionColumn string, statuses []string, sortColumns map[string]string) *FormService[T, P] {
	return &FormService[T, P]{
		db:             db,
		positionColumn: positionColumn,
		statuses:       statuses,
		sortColumns:    sortColumns,
	}
}

// OnCreated registers a post-commit hook run after a successful Create.
// Hooks run asynchronously; their failures never reach the caller.
func (s *FormService[T, P]) OnCreated(fn func(P)) {
	s.afterCreate = append(s.afterCreate, fn)
}

// OnStatusChanged registers a post-commit hook run after a status transition.
func (s *FormService[T, P]) OnStatusChanged(fn func(record P, oldStatus, newStatus string)) {
	s.afterStatusChange = append(s.afterStatusChange, fn)
}

// Create persists a new submission. The entity's BeforeCreate hook assigns
// id, default status and the shared createdAt/updatedAt instant.
func (s *FormService[T, P]) Create(rec P) error {
	if err := s.db.Create(rec).Error; err != nil {
		return err
	}
	for _, hook := range s.afterCreate {
		go hook(rec)
	}
	return nil
}

// Get returns the submission by id or ErrNotFound.
func (s *FormService[T, P]) Get(id string) (P, error) {
	var zero P
	var rec T
	p := P(&rec)
	if err := s.db.First(p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return p, nil
}

func (s *FormService[T, P]) sortClause(q ListQuery) string {
	column, ok := s.sortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(q.Order, "asc") {
		dir = "ASC"
	}
	return column + " " + dir
}

// List returns one page of submissions plus pagination totals.
// Page defaults to 1, limit to 10; pages = ceil(total/limit).
func (s *FormService[T, P]) List(q ListQuery) ([]T, Pagination, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	query := s.db.Model(new(T))
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Position != "" {
		query = query.Where(s.positionColumn+" = ?", q.Position)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	var records []T
	err := query.Session(&gorm.Session{}).
		Order(s.sortClause(q)).
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&records).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return records, Pagination{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(q.Limit))),
	}, nil
}

// UpdateStatusAndNotes applies the only mutations allowed after creation.
// A supplied status that differs from the current one fires the
// status-change hooks after the save; notes overwrite unconditionally when
// supplied, including the empty string. updatedAt is refreshed on every save.
func (s *FormService[T, P]) UpdateStatusAndNotes(id string, status, notes *string) (P, error) {
	var zero P
	rec, err := s.Get(id)
	if err != nil {
		return zero, err
	}

	oldStatus := rec.GetStatus()
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if status != nil {
		updates["status"] = *status
	}
	if notes != nil {
		updates["notes"] = *notes
	}

	if err := s.db.Model(rec).Where("id = ?", id).Updates(updates).Error; err != nil {
		return zero, err
	}

	rec, err = s.Get(id)
	if err != nil {
		return zero, err
	}

	if status != nil && *status != oldStatus {
		for _, hook := range s.afterStatusChange {
			go hook(rec, oldStatus, *status)
		}
	}
	return rec, nil
}

// Delete removes the submission by id. Files stored on disk for the record
// are left in place.
func (s *FormService[T, P]) Delete(id string) error {
	res := s.db.Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates totals, per-status counts (zero-filled over the enum)
// and per-position counts (observed values only).
func (s *FormService[T, P]) Stats() (Stats, error) {
	stats := Stats{ByStatus: make(map[string]int64, len(s.statuses))}

	if err := s.db.Model(new(T)).Count(&stats.Total).Error; err != nil {
		return Stats{}, err
	}

	for _, status := range s.statuses {
		stats.ByStatus[status] = 0
	}
	var byStatus []struct {
		Status string
		Count  int64
	}
	if err := s.db.Model(new(T)).
		Select("status, count(*) as count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return Stats{}, err
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.Count
	}

	if err := s.db.Model(new(T)).
		Select(s.positionColumn + " as position, count(*) as count").
		Group(s.positionColumn).
		Scan(&stats.ByPosition).Error; err != nil {
		return Stats{}, err
	}
	return stats, nil
}
