package utils

import "time"

// TiktokDateLayout is the civil date layout expected by the TikTok API.
const TiktokDateLayout = time.DateOnly

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(TiktokDateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatTiktokDate drops the time of day and formats t as YYYY-MM-DD.
func FormatTiktokDate(t time.Time) string {
	return t.Format(TiktokDateLayout)
}
