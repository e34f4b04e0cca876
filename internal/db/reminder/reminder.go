package reminder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	c "dentalab/internal/core/domain/common"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/db"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const reminderColumns = `id, titulo, descripcion, tipo, tipo_entidad, entidad_id,
	fecha_recordatorio, prioridad, administrador_id, estado, repetir, frecuencia,
	notificado, fecha_notificacion, observaciones, created_at, updated_at`

type PgxReminderRepository struct {
	db db.Querier
}

func NewPgxReminderRepository(q db.Querier) *PgxReminderRepository {
	if q == nil {
		panic(e.NewNilArgumentError("q"))
	}
	return &PgxReminderRepository{db: q}
}

func (r *PgxReminderRepository) Create(
	ctx context.Context,
	input reminder.CreateInput,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO recordatorios (
			titulo, descripcion, tipo, tipo_entidad, entidad_id, fecha_recordatorio,
			prioridad, administrador_id, estado, repetir, frecuencia, notificado,
			fecha_notificacion, observaciones, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
		RETURNING `+reminderColumns,
		input.Title,
		encodeOptionalString(input.Description),
		input.Kind.String(),
		encodeEntityKind(input.Entity),
		encodeEntityID(input.Entity),
		input.At,
		input.Priority.String(),
		encodeOptionalInt64(input.AdminID),
		input.Status.String(),
		input.Repeat.IsPresent,
		encodeFrequency(input.Repeat),
		input.Notified,
		encodeOptionalTime(input.NotifiedAt),
		encodeOptionalString(input.Notes),
		input.CreatedAt,
	)
	return decodeReminder(row)
}

func (r *PgxReminderRepository) GetByID(
	ctx context.Context,
	id reminder.ID,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+reminderColumns+` FROM recordatorios WHERE id = $1`,
		int64(id),
	)
	rem, err = decodeReminder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return rem, reminder.ErrReminderDoesNotExist
	}
	return rem, err
}

func (r *PgxReminderRepository) Read(
	ctx context.Context,
	options reminder.ReadOptions,
) (reminders []reminder.Reminder, err error) {
	where, args := encodeReadOptions(options)
	query := `SELECT ` + reminderColumns + ` FROM recordatorios` + where + encodeOrderBy(options.OrderBy)
	if options.Limit.IsPresent {
		args = append(args, int64(options.Limit.Value))
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if options.Offset > 0 {
		args = append(args, int64(options.Offset))
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		rem, err := decodeReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func (r *PgxReminderRepository) Count(
	ctx context.Context,
	options reminder.ReadOptions,
) (uint, error) {
	where, args := encodeReadOptions(options)
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM recordatorios`+where, args...).Scan(&count)
	if err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (r *PgxReminderRepository) Update(
	ctx context.Context,
	input reminder.UpdateInput,
) (rem reminder.Reminder, err error) {
	assignments := []string{"updated_at = NOW()"}
	args := []interface{}{int64(input.ID)}

	addAssignment := func(column string, value interface{}) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.DoTitleUpdate {
		addAssignment("titulo", input.Title)
	}
	if input.DoDescriptionUpdate {
		addAssignment("descripcion", encodeOptionalString(input.Description))
	}
	if input.DoAtUpdate {
		addAssignment("fecha_recordatorio", input.At)
	}
	if input.DoPriorityUpdate {
		addAssignment("prioridad", input.Priority.String())
	}
	if input.DoStatusUpdate {
		addAssignment("estado", input.Status.String())
	}
	if input.DoRepeatUpdate {
		addAssignment("repetir", input.Repeat.IsPresent)
		addAssignment("frecuencia", encodeFrequency(input.Repeat))
	}
	if input.DoNotifiedUpdate {
		addAssignment("notificado", input.Notified)
		addAssignment("fecha_notificacion", encodeOptionalTime(input.NotifiedAt))
	}
	if input.DoNotesUpdate {
		addAssignment("observaciones", encodeOptionalString(input.Notes))
	}

	row := r.db.QueryRow(
		ctx,
		`UPDATE recordatorios SET `+strings.Join(assignments, ", ")+
			` WHERE id = $1 RETURNING `+reminderColumns,
		args...,
	)
	rem, err = decodeReminder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return rem, reminder.ErrReminderDoesNotExist
	}
	return rem, err
}

func (r *PgxReminderRepository) UpdateMany(
	ctx context.Context,
	input reminder.UpdateManyInput,
) (uint, error) {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE recordatorios
		SET estado = $1, updated_at = NOW()
		WHERE estado = $2 AND fecha_recordatorio < $3`,
		input.SetStatus.String(),
		input.StatusEquals.String(),
		input.AtBefore,
	)
	if err != nil {
		return 0, err
	}
	return uint(tag.RowsAffected()), nil
}

func (r *PgxReminderRepository) Delete(ctx context.Context, id reminder.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recordatorios WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return reminder.ErrReminderDoesNotExist
	}
	return nil
}

func encodeReadOptions(options reminder.ReadOptions) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	addCondition := func(format string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if options.StatusIn.IsPresent {
		statuses := make([]string, len(options.StatusIn.Value))
		for ix, status := range options.StatusIn.Value {
			statuses[ix] = status.String()
		}
		statusArray := &pgtype.TextArray{}
		if err := statusArray.Set(statuses); err == nil {
			addCondition("estado = ANY($%d)", statusArray)
		}
	}
	if options.KindEquals.IsPresent {
		addCondition("tipo = $%d", options.KindEquals.Value.String())
	}
	if options.PriorityEquals.IsPresent {
		addCondition("prioridad = $%d", options.PriorityEquals.Value.String())
	}
	if options.EntityEquals.IsPresent {
		addCondition("tipo_entidad = $%d", options.EntityEquals.Value.Kind.String())
		addCondition("entidad_id = $%d", options.EntityEquals.Value.ID)
	}
	if options.VisibleTo.IsPresent {
		addCondition("(administrador_id IS NULL OR administrador_id = $%d)", options.VisibleTo.Value)
	}
	if options.NotifiedEquals.IsPresent {
		addCondition("notificado = $%d", options.NotifiedEquals.Value)
	}
	if options.AtBefore.IsPresent {
		addCondition("fecha_recordatorio < $%d", options.AtBefore.Value)
	}
	if options.AtAfter.IsPresent {
		addCondition("fecha_recordatorio >= $%d", options.AtAfter.Value)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func encodeOrderBy(orderBy reminder.OrderBy) string {
	switch orderBy {
	case reminder.OrderByIDDesc:
		return " ORDER BY id DESC"
	case reminder.OrderByAtAsc:
		return " ORDER BY fecha_recordatorio ASC"
	case reminder.OrderByAtDesc:
		return " ORDER BY fecha_recordatorio DESC"
	default:
		return " ORDER BY id ASC"
	}
}

func encodeOptionalString(v c.Optional[string]) sql.NullString {
	return sql.NullString{String: v.Value, Valid: v.IsPresent}
}

func encodeOptionalInt64(v c.Optional[int64]) sql.NullInt64 {
	return sql.NullInt64{Int64: v.Value, Valid: v.IsPresent}
}

func encodeOptionalTime(v c.Optional[time.Time]) sql.NullTime {
	return sql.NullTime{Time: v.Value, Valid: v.IsPresent}
}

func encodeFrequency(repeat c.Optional[reminder.Frequency]) sql.NullString {
	return sql.NullString{String: repeat.Value.String(), Valid: repeat.IsPresent}
}

func encodeEntityKind(entity c.Optional[reminder.EntityRef]) sql.NullString {
	return sql.NullString{String: entity.Value.Kind.String(), Valid: entity.IsPresent}
}

func encodeEntityID(entity c.Optional[reminder.EntityRef]) sql.NullString {
	return sql.NullString{String: entity.Value.ID, Valid: entity.IsPresent}
}

func decodeReminder(row pgx.Row) (rem reminder.Reminder, err error) {
	var (
		description  sql.NullString
		kind         string
		entityKind   sql.NullString
		entityID     sql.NullString
		priority     string
		adminID      sql.NullInt64
		status       string
		repeat       bool
		frequency    sql.NullString
		notifiedAt   sql.NullTime
		observations sql.NullString
	)
	err = row.Scan(
		&rem.ID,
		&rem.Title,
		&description,
		&kind,
		&entityKind,
		&entityID,
		&rem.At,
		&priority,
		&adminID,
		&status,
		&repeat,
		&frequency,
		&rem.Notified,
		&notifiedAt,
		&observations,
		&rem.CreatedAt,
		&rem.UpdatedAt,
	)
	if err != nil {
		return rem, err
	}

	rem.Description = c.NewOptional(description.String, description.Valid)
	rem.AdminID = c.NewOptional(adminID.Int64, adminID.Valid)
	rem.NotifiedAt = c.NewOptional(notifiedAt.Time, notifiedAt.Valid)
	rem.Notes = c.NewOptional(observations.String, observations.Valid)

	if rem.Kind, err = reminder.ParseKind(kind); err != nil {
		return rem, err
	}
	if rem.Priority, err = reminder.ParsePriority(priority); err != nil {
		return rem, err
	}
	if rem.Status, err = reminder.ParseStatus(status); err != nil {
		return rem, err
	}
	if entityKind.Valid && entityID.Valid {
		kind, err := reminder.ParseEntityKind(entityKind.String)
		if err != nil {
			return rem, err
		}
		rem.Entity = c.NewOptional(reminder.EntityRef{Kind: kind, ID: entityID.String}, true)
	}
	if repeat {
		if !frequency.Valid {
			return rem, reminder.ErrFrequencyNotSet
		}
		f, err := reminder.ParseFrequency(frequency.String)
		if err != nil {
			return rem, err
		}
		rem.Repeat = c.NewOptional(f, true)
	}
	return rem, nil
}

var _ reminder.Repository = (*PgxReminderRepository)(nil)
