// Package tiktokschema holds the descriptors used to validate every payload
// sent to and every response received from the TikTok Business API.
package tiktokschema

import (
	"fmt"

	"github.com/vfg2006/tiktok-manager-api/pkg/schema"
)

type Resource string

const (
	ResourceAdvertiser Resource = "advertiser"
	ResourceCampaign   Resource = "campaign"
	ResourceAdGroup    Resource = "adgroup"
	ResourceAd         Resource = "ad"
	ResourceImage      Resource = "image"
	ResourceVideo      Resource = "video"
	ResourceReport     Resource = "report"
)

type Operation string

const (
	OperationCreate       Operation = "create"
	OperationUpdate       Operation = "update"
	OperationStatusUpdate Operation = "status_update"
	OperationInfo         Operation = "info"
	OperationDetails      Operation = "details"
	OperationAccounts     Operation = "accounts"
	OperationInsights     Operation = "insights"
)

type key struct {
	resource  Resource
	operation Operation
}

var (
	requests  = map[key]*schema.Descriptor{}
	responses = map[key]*schema.Descriptor{}
)

func registerRequest(r Resource, op Operation, d *schema.Descriptor) {
	requests[key{r, op}] = d
}

func registerResponse(r Resource, op Operation, d *schema.Descriptor) {
	responses[key{r, op}] = d
}

// Request returns the descriptor for the payload sent on (r, op).
func Request(r Resource, op Operation) (*schema.Descriptor, bool) {
	d, ok := requests[key{r, op}]
	return d, ok
}

// Response returns the descriptor for the data received on (r, op).
func Response(r Resource, op Operation) (*schema.Descriptor, bool) {
	d, ok := responses[key{r, op}]
	return d, ok
}

// MustRequest is Request for lookups that are fixed at compile time. A miss is
// a programming error and panics.
func MustRequest(r Resource, op Operation) *schema.Descriptor {
	d, ok := Request(r, op)
	if !ok {
		panic(fmt.Sprintf("tiktokschema: no request descriptor for %s/%s", r, op))
	}
	return d
}

// MustResponse is Response for lookups that are fixed at compile time.
func MustResponse(r Resource, op Operation) *schema.Descriptor {
	d, ok := Response(r, op)
	if !ok {
		panic(fmt.Sprintf("tiktokschema: no response descriptor for %s/%s", r, op))
	}
	return d
}
