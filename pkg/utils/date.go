package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate lê uma data AAAA-MM-DD em UTC. Texto vazio devolve nil, sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
