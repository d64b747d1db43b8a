package model

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid status")

type Status int

const (
	StatusPending Status = iota
	StatusInProgress
	StatusDone
)

var statusNames = map[Status]string{
	StatusPending:    "Pendente",
	StatusInProgress: "EmAndamento",
	StatusDone:       "Finalizado",
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// ParseStatus принимает имя варианта (без учета регистра) или его числовое значение
func ParseStatus(raw string) (Status, error) {
	raw = strings.TrimSpace(raw)
	for s, name := range statusNames {
		if strings.EqualFold(raw, name) {
			return s, nil
		}
	}
	if n, err := strconv.Atoi(raw); err == nil && Status(n).Valid() {
		return Status(n), nil
	}
	return 0, ErrInvalidStatus
}

func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, ErrInvalidStatus
	}
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// допускаем числовое значение, как в исходном API
		var n int
		if err := json.Unmarshal(data, &n); err != nil {
			return ErrInvalidStatus
		}
		raw = strconv.Itoa(n)
	}

	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
