package handler

import (
	"net/http"

	"github.com/vfg2006/tiktok-manager-api/infrastructure/repository"
	"github.com/vfg2006/tiktok-manager-api/internal/api/handler/router"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/actions"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/adassets"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/importing"
	"github.com/vfg2006/tiktok-manager-api/pkg/middleware"
)

var (
	allRoles  = []func(http.Handler) http.Handler{middleware.AllRoles()}
	adminOnly = []func(http.Handler) http.Handler{middleware.AdminOnly()}
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Imports(service importing.Importer, defaultS3Path string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodPost,
			Handler:     GetAccountIDs(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/imports/:resource",
			Method:      http.MethodPost,
			Handler:     ImportDetails(service, defaultS3Path),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/imports/:resource/insights",
			Method:      http.MethodPost,
			Handler:     ImportInsights(service, defaultS3Path),
			Middlewares: allRoles,
		},
	}
}

func Actions(service actions.ActionService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/advertisers/:advertiserID/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/advertisers/:advertiserID/campaigns/:campaignID",
			Method:      http.MethodPut,
			Handler:     UpdateCampaign(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/advertisers/:advertiserID/adgroups",
			Method:      http.MethodPost,
			Handler:     CreateAdGroup(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/advertisers/:advertiserID/adgroups/:adgroupID",
			Method:      http.MethodPut,
			Handler:     UpdateAdGroup(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/advertisers/:advertiserID/adgroups/:adgroupID/ads",
			Method:      http.MethodPost,
			Handler:     CreateAds(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/advertisers/:advertiserID/adgroups/:adgroupID/ads",
			Method:      http.MethodPut,
			Handler:     UpdateAds(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/advertisers/:advertiserID/ads/status",
			Method:      http.MethodPut,
			Handler:     UpdateAdsStatus(service),
			Middlewares: allRoles,
		},
	}
}

func AdAssets(service adassets.AdAssetsService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/advertisers/:advertiserID/images",
			Method:      http.MethodPost,
			Handler:     CreateImage(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/advertisers/:advertiserID/images",
			Method:      http.MethodGet,
			Handler:     GetImagesInfo(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/advertisers/:advertiserID/images/:imageID/name",
			Method:      http.MethodPut,
			Handler:     UpdateImageName(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/advertisers/:advertiserID/videos",
			Method:      http.MethodPost,
			Handler:     CreateVideo(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/advertisers/:advertiserID/videos",
			Method:      http.MethodGet,
			Handler:     GetVideosInfo(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/advertisers/:advertiserID/videos/:videoID/name",
			Method:      http.MethodPut,
			Handler:     UpdateVideoName(service),
			Middlewares: allRoles,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly,
		},
	}
}

func ImportRuns(runs repository.ImportRunRepository) []router.Route {
	if runs == nil {
		return nil
	}

	return []router.Route{
		{
			Path:        "/v1/import-runs",
			Method:      http.MethodGet,
			Handler:     ListImportRuns(runs),
			Middlewares: adminOnly,
		},
	}
}
