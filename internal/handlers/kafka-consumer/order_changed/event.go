package order_changed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"console/internal/entities"
)

var errMissingRecordID = errors.New("event has no record id")

// changeEvent - сообщение об изменении строки таблицы заказов.
type changeEvent struct {
	EventType string        `json:"eventType"`
	New       *recordFields `json:"new"`
	Old       *recordFields `json:"old"`
}

type recordFields struct {
	ID        json.RawMessage `json:"id"`
	OrderCode string          `json:"order_code"`
}

func decodeEvent(data []byte) (entities.ChangeEvent, error) {
	var raw changeEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return entities.ChangeEvent{}, fmt.Errorf("decode change event: %w", err)
	}

	record := raw.New
	if record == nil || len(record.ID) == 0 {
		record = raw.Old
	}
	if record == nil {
		return entities.ChangeEvent{}, errMissingRecordID
	}

	id, err := parseRecordID(record.ID)
	if err != nil {
		return entities.ChangeEvent{}, err
	}

	return entities.ChangeEvent{
		Type:      entities.ChangeType(strings.ToUpper(raw.EventType)),
		RecordID:  id,
		OrderCode: record.OrderCode,
	}, nil
}

func parseRecordID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", errMissingRecordID
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", fmt.Errorf("decode record id: %w", err)
	}

	switch id := v.(type) {
	case string:
		if id == "" {
			return "", errMissingRecordID
		}
		return id, nil
	case json.Number:
		return id.String(), nil
	default:
		return "", fmt.Errorf("unsupported record id type %T", v)
	}
}
