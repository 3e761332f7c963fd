package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"companion-srv/internal/chat/repository"
	"companion-srv/internal/model"

	"github.com/google/uuid"
)

// CreateMessage inserts one message row.
func (r *implRepository) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.Message, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO companion.messages (id, conversation_id, role, content, emotion, safety_level, backend, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, conversation_id, role, content, emotion, safety_level, backend, metadata, created_at
	`

	var msg model.Message
	var emotionCol, safetyCol, backendCol sql.NullString

	err := r.db.QueryRowContext(ctx, query,
		id, opt.ConversationID, opt.Role, opt.Content,
		nullString(opt.Emotion), nullString(opt.SafetyLevel), nullString(opt.Backend),
		nullJSON(opt.Metadata),
		now,
	).Scan(
		&msg.ID, &msg.ConversationID, &msg.Role, &msg.Content,
		&emotionCol, &safetyCol, &backendCol, &msg.Metadata,
		&msg.CreatedAt,
	)
	if err != nil {
		return model.Message{}, fmt.Errorf("CreateMessage: %w", err)
	}

	msg.Emotion = emotionCol.String
	msg.SafetyLevel = safetyCol.String
	msg.Backend = backendCol.String

	return msg, nil
}

// ListMessages lists messages in a conversation.
func (r *implRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	query := `
		SELECT id, conversation_id, role, content, emotion, safety_level, backend, metadata, created_at
		FROM companion.messages
		WHERE conversation_id = $1
	`

	order := "DESC"
	if opt.OrderASC {
		order = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY created_at %s", order)

	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, opt.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("ListMessages: %w", err)
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var msg model.Message
		var emotionCol, safetyCol, backendCol sql.NullString

		if err := rows.Scan(
			&msg.ID, &msg.ConversationID, &msg.Role, &msg.Content,
			&emotionCol, &safetyCol, &backendCol, &msg.Metadata,
			&msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListMessages scan: %w", err)
		}

		msg.Emotion = emotionCol.String
		msg.SafetyLevel = safetyCol.String
		msg.Backend = backendCol.String
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

// nullJSON converts empty/nil json.RawMessage to a database-compatible value.
func nullJSON(data []byte) interface{} {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return data
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
