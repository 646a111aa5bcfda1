package types

// 上传素材种类
const (
	AssetKindLogo      = "logo"
	AssetKindWatermark = "watermark"
	AssetKindIntro     = "intro"
	AssetKindOutro     = "outro"
)

// UploadAssetResp 素材上传结果。视频类素材带时长，图片类没有
type UploadAssetResp struct {
	URL      string  `json:"url"`
	Duration float64 `json:"duration,omitempty"`
}
