package utils

import (
	jsoniter "github.com/json-iterator/go"
)

// JSON is shared by every package that talks to TikTok or S3. Numbers are kept
// as json.Number so large ids survive the round trip.
var JSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

func MarshalToString(in any) (string, error) {
	return JSON.MarshalToString(in)
}

func PrettyJson(in any) string {
	out, err := JSON.MarshalIndent(in, "", "\t")
	if err != nil {
		return ""
	}

	return string(out)
}
