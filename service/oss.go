package service

import (
	"context"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"Reelgen/config"
	"Reelgen/types"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/google/uuid"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

type OssService struct {
	Client     *oss.Client
	BucketName string
	PublicHost string
}

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadReader 上传流（HTTP / 表单上传）
	UploadReader(ctx context.Context, reader io.Reader, objectKey string) error

	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error

	// SignURL 生成临时访问 URL（秒）
	SignURL(ctx context.Context, objectKey string, expireSeconds int64) (string, error)

	// UploadAsset 上传频道素材（Logo / 水印 / 片头 / 片尾）
	UploadAsset(ctx context.Context, kind string, header *multipart.FileHeader, duration float64) (*types.UploadAssetResp, error)
}

func NewOssService(client *oss.Client, cfg *config.OssConfig) IOssService {
	return &OssService{
		Client:     client,
		BucketName: cfg.Bucket,
		PublicHost: cfg.PublicHost,
	}
}

func (s *OssService) UploadAsset(ctx context.Context, kind string, header *multipart.FileHeader, duration float64) (*types.UploadAssetResp, error) {

	const maxSize int64 = 100 << 20 // 100MB

	if header == nil {
		return nil, fmt.Errorf("missing file")
	}
	// header.Size 不可信，但可做第一道拦截
	if header.Size <= 0 || header.Size > maxSize {
		return nil, fmt.Errorf("file size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// 要能 Seek，否则无法在读头校验后再上传同一份流
	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("uploaded file is not seekable")
	}

	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	_, _ = seeker.Seek(0, io.SeekStart)

	var ext string
	switch kind {
	case types.AssetKindLogo, types.AssetKindWatermark:
		ext, err = checkImage(seeker, contentType)
		duration = 0
	case types.AssetKindIntro, types.AssetKindOutro:
		ext, err = checkVideo(contentType)
	default:
		return nil, fmt.Errorf("unknown asset kind: %s", kind)
	}
	if err != nil {
		return nil, err
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	objectKey := fmt.Sprintf("assets/%s/%s/%s%s",
		kind,
		time.Now().Format("2006/01/02"),
		uuid.NewString(),
		ext,
	)

	limited := io.LimitReader(seeker, maxSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return nil, err
	}

	return &types.UploadAssetResp{
		URL:      s.PublicHost + "/" + objectKey,
		Duration: duration,
	}, nil
}

// checkImage 读取图片头校验格式，不解码全图
func checkImage(seeker io.ReadSeeker, contentType string) (string, error) {
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return "", fmt.Errorf("unsupported image type: %s", contentType)
	}

	_, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return "", fmt.Errorf("invalid image: %w", err)
	}
	format = strings.ToLower(format)
	if format == "jpeg" {
		return ".jpg", nil
	}
	return "." + format, nil
}

func checkVideo(contentType string) (string, error) {
	switch contentType {
	case "video/mp4":
		return ".mp4", nil
	case "video/webm":
		return ".webm", nil
	}
	return "", fmt.Errorf("unsupported video type: %s", contentType)
}

// UploadReader 上传 Reader（HTTP 上传场景）
func (s *OssService) UploadReader(
	ctx context.Context,
	reader io.Reader,
	objectKey string,
) error {
	_, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   reader,
	})
	return err
}

// Delete 删除对象
func (s *OssService) Delete(
	ctx context.Context,
	objectKey string,
) error {

	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	return err
}

// SignURL 生成临时访问 URL
func (s *OssService) SignURL(
	ctx context.Context,
	objectKey string,
	expireSeconds int64,
) (string, error) {

	result, err := s.Client.Presign(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	}, oss.PresignExpires(time.Duration(expireSeconds)*time.Second))
	if err != nil {
		return "", err
	}

	return result.URL, nil
}
