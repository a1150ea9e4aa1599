package tiktokschema

import "github.com/vfg2006/tiktok-manager-api/pkg/schema"

var imageDetails = &schema.Descriptor{
	Name: "image_details",
	Fields: []schema.Field{
		requiredText("image_id"),
		text("material_id"),
		text("file_name"),
		text("format"),
		text("image_url"),
		text("signature"),
		integer("width"),
		integer("height"),
		integer("size"),
		flag("displayable"),
		text("create_time"),
		text("modify_time"),
	},
}

var videoDetails = &schema.Descriptor{
	Name: "video_details",
	Fields: []schema.Field{
		requiredText("video_id"),
		text("material_id"),
		text("file_name"),
		text("format"),
		text("video_cover_url"),
		text("preview_url"),
		text("signature"),
		number("duration"),
		integer("width"),
		integer("height"),
		integer("size"),
		flag("displayable"),
		text("create_time"),
		text("modify_time"),
	},
}

func init() {
	registerRequest(ResourceImage, OperationCreate, &schema.Descriptor{
		Name: "image_create",
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			enum("upload_type", true, uploadTypes...),
			text("image_file"),
			text("image_url"),
			text("file_id"),
			text("file_name"),
			text("image_signature"),
		},
	})
	registerRequest(ResourceImage, OperationUpdate, &schema.Descriptor{
		Name: "image_update",
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			requiredText("image_id"),
			requiredText("file_name"),
		},
	})
	registerRequest(ResourceImage, OperationInfo, &schema.Descriptor{
		Name: "image_info_params",
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			encodedTexts("image_ids"),
		},
	})

	registerResponse(ResourceImage, OperationCreate, &schema.Descriptor{
		Name:   "image_created",
		Fields: []schema.Field{requiredText("image_id")},
	})
	registerResponse(ResourceImage, OperationInfo, listResponse("images_details", imageDetails))

	registerRequest(ResourceVideo, OperationCreate, &schema.Descriptor{
		Name: "video_create",
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			enum("upload_type", true, uploadTypes...),
			text("video_file"),
			text("video_url"),
			text("file_id"),
			text("file_name"),
			text("video_signature"),
			flag("flaw_detect"),
			flag("auto_fix_enabled"),
			flag("auto_bind_enabled"),
		},
	})
	registerRequest(ResourceVideo, OperationUpdate, &schema.Descriptor{
		Name: "video_update",
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			requiredText("video_id"),
			requiredText("file_name"),
		},
	})
	registerRequest(ResourceVideo, OperationInfo, &schema.Descriptor{
		Name: "video_info_params",
		Fields: []schema.Field{
			requiredText("advertiser_id"),
			encodedTexts("video_ids"),
		},
	})

	// The video upload endpoint answers with a list, even for a single file.
	registerResponse(ResourceVideo, OperationCreate, listResponse("videos_created", &schema.Descriptor{
		Name:   "video_created",
		Fields: []schema.Field{requiredText("video_id")},
	}))
	registerResponse(ResourceVideo, OperationInfo, listResponse("videos_details", videoDetails))
}
