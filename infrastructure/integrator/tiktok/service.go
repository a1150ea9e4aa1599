package tiktok

import (
	"context"
	"errors"
	"maps"
	"time"

	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/tiktok-manager-api/infrastructure/integrator/tiktok/tiktokschema"
	"github.com/vfg2006/tiktok-manager-api/internal/domain"
	"github.com/vfg2006/tiktok-manager-api/pkg/schema"
	"github.com/vfg2006/tiktok-manager-api/pkg/utils"
)

// TiktokService talks to the TikTok API on behalf of one access token. It is
// meant to live for a single request or job and is not safe for concurrent
// use.
type TiktokService struct {
	accessToken string
	gateways    GatewayFactory
	client      tiktokclient.Gateway
}

func New(accessToken string, gateways GatewayFactory) *TiktokService {
	return &TiktokService{
		accessToken: accessToken,
		gateways:    gateways,
	}
}

// gateway opens the connection on first use and keeps it for the lifetime of
// the service. Factory errors are returned as they are.
func (s *TiktokService) gateway() (tiktokclient.Gateway, error) {
	if s.client == nil {
		client, err := s.gateways(s.accessToken)
		if err != nil {
			return nil, err
		}
		s.client = client
	}
	return s.client, nil
}

type gatewayCall func(gateway tiktokclient.Gateway, ctx context.Context, params map[string]any) (map[string]any, error)

// operation describes one round trip: identifying params are merged into a
// copy of the payload, the result is validated against request, sent through
// call and, when response is set, the answer is validated against it.
type operation struct {
	name     string
	subject  string
	params   []Param
	payload  map[string]any
	request  *schema.Descriptor
	response *schema.Descriptor
	call     gatewayCall
}

func (s *TiktokService) execute(ctx context.Context, op operation) (map[string]any, error) {
	payload := make(map[string]any, len(op.payload)+len(op.params))
	maps.Copy(payload, op.payload)
	for _, p := range op.params {
		payload[p.Name] = p.Value
	}

	validated := schema.Validate(payload, op.request)
	if !validated.Valid() {
		return nil, s.newError(op, ErrorKindResponseDataNotValid, StageRequest, payload, validated.Reason(), nil)
	}

	gateway, err := s.gateway()
	if err != nil {
		return nil, err
	}

	response, err := op.call(gateway, ctx, validated.Map())
	if errors.Is(err, tiktokclient.ErrUploadPathNotAllowed) {
		return nil, s.newError(op, ErrorKindResponseDataNotValid, StageRequest, validated.Map(), err.Error(), err)
	}
	if err != nil {
		return nil, s.newError(op, ErrorKindProvider, StageCall, validated.Map(), "", err)
	}

	if op.response == nil {
		return response, nil
	}

	result := schema.Validate(response, op.response)
	if !result.Valid() {
		return nil, s.newError(op, ErrorKindResponseDataNotValid, StageResponse, response, result.Reason(), nil)
	}

	return result.Map(), nil
}

func (s *TiktokService) newError(op operation, kind ErrorKind, stage Stage, data any, reason string, err error) *ClientError {
	return &ClientError{
		Kind:        kind,
		Stage:       stage,
		Operation:   op.name,
		Subject:     op.subject,
		AccessToken: s.accessToken,
		Params:      op.params,
		Data:        data,
		Reason:      reason,
		Err:         err,
	}
}

func (s *TiktokService) GetAccountIDs(ctx context.Context, appID, secret string) ([]string, error) {
	data, err := s.execute(ctx, operation{
		name:     "fetch account ids through provider",
		subject:  "account_params",
		params:   []Param{{"app_id", appID}},
		payload:  map[string]any{"secret": secret},
		request:  tiktokschema.MustRequest(tiktokschema.ResourceAdvertiser, tiktokschema.OperationAccounts),
		response: tiktokschema.MustResponse(tiktokschema.ResourceAdvertiser, tiktokschema.OperationAccounts),
		call:     tiktokclient.Gateway.GetAdAccounts,
	})
	if err != nil {
		return nil, err
	}

	accounts := listOf(data)
	ids := make([]string, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, account["advertiser_id"].(string))
	}

	return ids, nil
}

var detailsCalls = map[domain.ResourceType]gatewayCall{
	domain.ResourceTypeCampaign: tiktokclient.Gateway.GetAdvertiserCampaigns,
	domain.ResourceTypeAdGroup:  tiktokclient.Gateway.GetAdvertiserAdGroups,
	domain.ResourceTypeAd:       tiktokclient.Gateway.GetAdvertiserAds,
}

// GetDetails fetches every campaign, ad group or ad of the advertiser.
func (s *TiktokService) GetDetails(ctx context.Context, advertiserID string, kind domain.ResourceType) ([]map[string]any, error) {
	resource := tiktokschema.ResourceFor(kind)

	data, err := s.execute(ctx, operation{
		name:     "fetch " + kind.String() + " details",
		subject:  kind.String() + "_details_params",
		params:   []Param{{"advertiser_id", advertiserID}},
		payload:  map[string]any{"fields": tiktokschema.DetailFields(kind)},
		request:  tiktokschema.MustRequest(resource, tiktokschema.OperationDetails),
		response: tiktokschema.MustResponse(resource, tiktokschema.OperationDetails),
		call:     detailsCalls[kind],
	})
	if err != nil {
		return nil, err
	}

	return listOf(data), nil
}

func (s *TiktokService) GetCampaignsDetails(ctx context.Context, advertiserID string) ([]map[string]any, error) {
	return s.GetDetails(ctx, advertiserID, domain.ResourceTypeCampaign)
}

func (s *TiktokService) GetAdGroupsDetails(ctx context.Context, advertiserID string) ([]map[string]any, error) {
	return s.GetDetails(ctx, advertiserID, domain.ResourceTypeAdGroup)
}

func (s *TiktokService) GetAdsDetails(ctx context.Context, advertiserID string) ([]map[string]any, error) {
	return s.GetDetails(ctx, advertiserID, domain.ResourceTypeAd)
}

// GetInsights runs the daily auction report of kind between from and to,
// both inclusive. Every record carries the advertiser id.
func (s *TiktokService) GetInsights(ctx context.Context, advertiserID string, kind domain.ResourceType, from, to time.Time) ([]map[string]any, error) {
	dimensions, metrics := tiktokschema.InsightFields(kind)

	data, err := s.execute(ctx, operation{
		name:    "get insights report",
		subject: "report_params",
		params: []Param{
			{"advertiser_id", advertiserID},
			{"resource_type", kind.String()},
			{"start_date", utils.FormatTiktokDate(from)},
			{"end_date", utils.FormatTiktokDate(to)},
		},
		payload: map[string]any{
			"service_type": tiktokschema.ServiceTypeAuction,
			"report_type":  tiktokschema.ReportTypeBasic,
			"data_level":   tiktokschema.DataLevel(kind),
			"dimensions":   dimensions,
			"metrics":      metrics,
		},
		request:  tiktokschema.MustRequest(tiktokschema.ResourceReport, tiktokschema.OperationInsights),
		response: tiktokschema.InsightsResponse(kind, advertiserID),
		call:     tiktokclient.Gateway.GetInsightsReport,
	})
	if err != nil {
		return nil, err
	}

	return listOf(data), nil
}

func listOf(data map[string]any) []map[string]any {
	list, _ := data["list"].([]map[string]any)
	if list == nil {
		return []map[string]any{}
	}
	return list
}

// acknowledged mirrors the API acknowledgement: any non empty data is a
// success.
func acknowledged(data map[string]any) bool {
	return len(data) > 0
}
