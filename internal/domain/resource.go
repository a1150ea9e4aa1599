package domain

import (
	"fmt"
	"strings"
)

// ResourceType identifica o tipo de recurso da TikTok. O valor também é
// enviado como parâmetro para a API e usado como tag dos arquivos exportados.
type ResourceType string

const (
	ResourceTypeCampaign ResourceType = "campaign"
	ResourceTypeAdGroup  ResourceType = "adgroup"
	ResourceTypeAd       ResourceType = "ad"
)

var ResourceTypes = []ResourceType{
	ResourceTypeCampaign,
	ResourceTypeAdGroup,
	ResourceTypeAd,
}

func (r ResourceType) String() string {
	return string(r)
}

func (r ResourceType) IsValid() bool {
	switch r {
	case ResourceTypeCampaign, ResourceTypeAdGroup, ResourceTypeAd:
		return true
	}
	return false
}

// ParseResourceType aceita o valor da API ("campaign", "adgroup", "ad") e as
// formas plurais usadas nas rotas ("campaigns", "adgroups", "ads").
func ParseResourceType(value string) (ResourceType, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "_", "")

	switch normalized {
	case "campaign", "campaigns":
		return ResourceTypeCampaign, nil
	case "adgroup", "adgroups":
		return ResourceTypeAdGroup, nil
	case "ad", "ads":
		return ResourceTypeAd, nil
	}

	return "", fmt.Errorf("invalid resource type: %q", value)
}
