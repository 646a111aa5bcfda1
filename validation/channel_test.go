package validation

import (
	"testing"

	"Reelgen/models"
	"Reelgen/pkg/modelfamily"
)

// validChannel 一份能通过全部校验的频道草稿
func validChannel() *models.Channel {
	return &models.Channel{
		ID:               1,
		Name:             "科普频道",
		URL:              "https://youtube.com/@science",
		Schedule:         models.ScheduleDaily,
		VideosMin:        1,
		VideosMax:        3,
		WatermarkSize:    20,
		WatermarkOpacity: 80,
		DescriptionPrompt: models.Prompt{
			Text:  "为 {{TITLE}} 写一段频道简介，频道是 {{CHANNEL_NAME}}",
			Model: withModel(modelfamily.DefaultsFor(modelfamily.FamilySampling), "gpt-4o"),
		},
		ThumbnailIDs: []int64{10},
	}
}

func withModel(cfg modelfamily.Config, model string) modelfamily.Config {
	cfg.Model = model
	return cfg
}

func hasError(errs []FieldError, field string, kind Kind) bool {
	for _, e := range errs {
		if e.Field == field && e.Kind == kind {
			return true
		}
	}
	return false
}

func TestValidateChannel_Valid(t *testing.T) {
	errs := ValidateChannel(validChannel())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

// min > max 必须报在 videos_max 上，别的字段合法也压不掉
func TestValidateChannel_MinGreaterThanMax(t *testing.T) {
	ch := validChannel()
	ch.VideosMin = 3
	ch.VideosMax = 1

	errs := ValidateChannel(ch)
	if !hasError(errs, "videos_max", KindCrossField) {
		t.Fatalf("expected cross-field error on videos_max, got %+v", errs)
	}
	for _, e := range errs {
		if e.Field == "videos_max" && e.Reason != "minimum must not exceed maximum" {
			t.Errorf("reason = %q", e.Reason)
		}
	}
}

// 片头开关关闭时 video_intro_url 不生效，存量值也不拦提交
func TestChannelActiveFields_IntroOff(t *testing.T) {
	ch := validChannel()
	ch.VideoIntro = false
	ch.VideoIntroURL = "https://cdn.example.com/stale-intro.mp4"

	active := ChannelActiveFields(ch)
	if active.Has("video_intro_url") {
		t.Error("video_intro_url should be inactive when video_intro is off")
	}

	errs := ValidateChannel(ch)
	if hasError(errs, "video_intro_url", KindRequiredMissing) {
		t.Errorf("inactive field raised RequiredFieldMissing: %+v", errs)
	}

	// 过期值必须被剥离，不进持久化
	StripChannel(ch, active)
	if ch.VideoIntroURL != "" {
		t.Errorf("stale intro url survived strip: %q", ch.VideoIntroURL)
	}
}

func TestValidateChannel_IntroOnWithoutAsset(t *testing.T) {
	ch := validChannel()
	ch.VideoIntro = true
	ch.VideoIntroURL = ""

	errs := ValidateChannel(ch)
	if !hasError(errs, "video_intro_url", KindRequiredMissing) {
		t.Fatalf("expected RequiredFieldMissing on video_intro_url, got %+v", errs)
	}
}

func TestValidateChannel_OutroOnWithoutAsset(t *testing.T) {
	ch := validChannel()
	ch.VideoOutro = true
	ch.VideoOutroURL = ""

	errs := ValidateChannel(ch)
	if !hasError(errs, "video_outro_url", KindRequiredMissing) {
		t.Fatalf("expected RequiredFieldMissing on video_outro_url, got %+v", errs)
	}
}

// 封面模板集合为空一律提交失败，错误挂表单级
func TestValidateChannel_EmptyThumbnails(t *testing.T) {
	ch := validChannel()
	ch.ThumbnailIDs = []int64{}

	errs := ValidateChannel(ch)
	if !hasError(errs, FormLevel, KindCrossField) {
		t.Fatalf("expected form-level error for empty thumbnail_ids, got %+v", errs)
	}
}

func TestChannelActiveFields_Watermark(t *testing.T) {
	ch := validChannel()
	ch.WatermarkURL = ""
	if ChannelActiveFields(ch).Has("watermark_position") {
		t.Error("watermark_position active without watermark_url")
	}

	ch.WatermarkURL = "https://cdn.example.com/mark.png"
	active := ChannelActiveFields(ch)
	for _, f := range []string{"watermark_position", "watermark_opacity", "watermark_size"} {
		if !active.Has(f) {
			t.Errorf("%s should be active when watermark_url is set", f)
		}
	}
}

// 水印未启用时，越界的 watermark_size 存量值不报错
func TestValidateChannel_InactiveWatermarkSizeIgnored(t *testing.T) {
	ch := validChannel()
	ch.WatermarkURL = ""
	ch.WatermarkSize = 0

	errs := ValidateChannel(ch)
	if hasError(errs, "watermark_size", KindStaticType) {
		t.Errorf("inactive watermark_size raised static error: %+v", errs)
	}
}

func TestValidateChannel_ChapterFieldsFollowToggle(t *testing.T) {
	ch := validChannel()
	ch.ChapterIndicators = true

	active := ChannelActiveFields(ch)
	if !active.Has("chapter_bg_color") || !active.Has("chapter_font_family") {
		t.Error("chapter style fields should be active when chapter_indicators is on")
	}
}

func TestValidateChannel_DuplicateRelationIDs(t *testing.T) {
	ch := validChannel()
	ch.ThumbnailIDs = []int64{10, 10}

	errs := ValidateChannel(ch)
	if !hasError(errs, "thumbnail_ids", KindCrossField) {
		t.Fatalf("expected duplicate-id error on thumbnail_ids, got %+v", errs)
	}
}

func TestValidateChannel_BadURL(t *testing.T) {
	ch := validChannel()
	ch.URL = "not a url"

	errs := ValidateChannel(ch)
	if !hasError(errs, "url", KindStaticType) {
		t.Fatalf("expected static error on url, got %+v", errs)
	}
}
