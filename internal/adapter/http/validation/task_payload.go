package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"taskdeck/internal/adapter/http/dto"
	"taskdeck/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput trims both fields and rejects titles that trim away
// to nothing. A missing description becomes the empty string.
func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	description := ""
	if req.Description != nil {
		description = strings.TrimSpace(*req.Description)
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: description,
	}, nil
}

// BuildUpdateTaskInput distinguishes absent fields from explicit nulls using
// the raw message map; nulls and empty updates are rejected.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var description *string
	switch {
	case hasJSONField(raw, "description") && isJSONNull(raw["description"]):
		// An explicit null clears the description.
		empty := ""
		description = &empty
	case hasJSONField(raw, "description") && req.Description == nil:
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	case req.Description != nil:
		value := strings.TrimSpace(*req.Description)
		description = &value
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		if !value.IsValid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		status = &value
	}

	return domain.UpdateTaskInput{
		Title:       title,
		Description: description,
		Status:      status,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
