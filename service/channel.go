package service

import (
	"context"

	"Reelgen/config"
	"Reelgen/dao"
	"Reelgen/models"
	"Reelgen/pkg/relation"
	"Reelgen/pkg/response"
	"Reelgen/pkg/snowflake"
	"Reelgen/pkg/utils"
	"Reelgen/types"
	"Reelgen/validation"

	"gorm.io/datatypes"
)

var _ IChannelService = (*ChannelService)(nil)

type IChannelService interface {
	CreateChannel(ctx context.Context, req *types.SaveChannelReq) (*types.CreateChannelResp, error)
	UpdateChannel(ctx context.Context, id int64, req *types.SaveChannelReq) error
	GetChannel(ctx context.Context, id int64) (*types.ChannelInfo, error)
	ListChannels(ctx context.Context, req *types.ListChannelsReq) (*types.ListChannelsResp, error)
	DeleteChannel(ctx context.Context, id int64) error
}

type ChannelService struct {
	Config       *config.Config
	ChannelDAO   *dao.Channel
	HookDAO      *dao.HookTemplate
	ThumbnailDAO *dao.ThumbnailTemplate
}

// CreateChannel 校验通过后落库
func (s *ChannelService) CreateChannel(ctx context.Context, req *types.SaveChannelReq) (*types.CreateChannelResp, error) {
	ch := buildChannel(req)

	if err := s.verify(ctx, ch); err != nil {
		return nil, err
	}
	if s.ChannelDAO.IsNameExist(ctx, ch.Name, 0) {
		return nil, response.NewError(400, "频道名已存在")
	}

	ch.ID = snowflake.GenID()
	if err := s.ChannelDAO.Create(ctx, ch); err != nil {
		return nil, err
	}
	return &types.CreateChannelResp{ChannelID: ch.ID}, nil
}

// UpdateChannel 编辑和创建走同一套校验
func (s *ChannelService) UpdateChannel(ctx context.Context, id int64, req *types.SaveChannelReq) error {
	if _, err := s.ChannelDAO.FindByID(ctx, id); err != nil {
		return response.NewError(404, "频道不存在")
	}

	ch := buildChannel(req)
	ch.ID = id

	if err := s.verify(ctx, ch); err != nil {
		return err
	}
	if s.ChannelDAO.IsNameExist(ctx, ch.Name, id) {
		return response.NewError(400, "频道名已存在")
	}
	return s.ChannelDAO.Save(ctx, ch)
}

func (s *ChannelService) GetChannel(ctx context.Context, id int64) (*types.ChannelInfo, error) {
	ch, err := s.ChannelDAO.FindByID(ctx, id)
	if err != nil {
		return nil, response.NewError(404, "频道不存在")
	}
	return &types.ChannelInfo{
		Channel:    *ch,
		PublicCode: utils.GenHashID(s.Config.App.SecretKey, int(ch.ID)),
	}, nil
}

func (s *ChannelService) ListChannels(ctx context.Context, req *types.ListChannelsReq) (*types.ListChannelsResp, error) {
	channels, total, err := s.ChannelDAO.ListChannels(ctx, req.OnlyActive, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	resp := &types.ListChannelsResp{
		Channels: make([]*types.ChannelInfo, 0, len(channels)),
		Total:    total,
	}
	for i := range channels {
		resp.Channels = append(resp.Channels, &types.ChannelInfo{
			Channel:    channels[i],
			PublicCode: utils.GenHashID(s.Config.App.SecretKey, int(channels[i].ID)),
		})
	}
	return resp, nil
}

func (s *ChannelService) DeleteChannel(ctx context.Context, id int64) error {
	return s.ChannelDAO.DeleteByID(ctx, id)
}

// verify 整表校验 + 清理非激活字段 + 关联 ID 去重和存在性检查
func (s *ChannelService) verify(ctx context.Context, ch *models.Channel) error {
	if errs := validation.ValidateChannel(ch); len(errs) > 0 {
		return NewValidationError(errs)
	}

	active := validation.ChannelActiveFields(ch)
	validation.StripChannel(ch, active)

	ch.HookIDs = datatypes.JSONSlice[int64](relation.NewSet(ch.HookIDs...).ToList())
	ch.ThumbnailIDs = datatypes.JSONSlice[int64](relation.NewSet(ch.ThumbnailIDs...).ToList())

	ok, err := s.HookDAO.ExistAll(ctx, ch.HookIDs)
	if err != nil {
		return err
	}
	if !ok {
		return response.NewError(400, "存在无效的钩子模板 ID")
	}
	ok, err = s.ThumbnailDAO.ExistAll(ctx, ch.ThumbnailIDs)
	if err != nil {
		return err
	}
	if !ok {
		return response.NewError(400, "存在无效的封面模板 ID")
	}
	return nil
}

func buildChannel(req *types.SaveChannelReq) *models.Channel {
	return &models.Channel{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,

		LogoURL:           req.LogoURL,
		WatermarkURL:      req.WatermarkURL,
		WatermarkPosition: req.WatermarkPosition,
		WatermarkOpacity:  req.WatermarkOpacity,
		WatermarkSize:     req.WatermarkSize,

		Schedule:  req.Schedule,
		VideosMin: req.VideosMin,
		VideosMax: req.VideosMax,

		ChapterIndicators: req.ChapterIndicators,
		VideoIntro:        req.VideoIntro,
		VideoOutro:        req.VideoOutro,
		IsActive:          req.IsActive,

		ChapterBgColor:    req.ChapterBgColor,
		ChapterFontColor:  req.ChapterFontColor,
		ChapterFontFamily: req.ChapterFontFamily,

		VideoIntroURL:     req.VideoIntroURL,
		IntroDissolveTime: req.IntroDissolveTime,
		IntroDuration:     req.IntroDuration,

		VideoOutroURL:     req.VideoOutroURL,
		OutroDissolveTime: req.OutroDissolveTime,
		OutroDuration:     req.OutroDuration,

		TitleFont:    req.TitleFont,
		TitleColor:   req.TitleColor,
		TitleBgColor: req.TitleBgColor,

		DescriptionPrompt: req.DescriptionPrompt,

		HookIDs:      datatypes.JSONSlice[int64](req.HookIDs),
		ThumbnailIDs: datatypes.JSONSlice[int64](req.ThumbnailIDs),
	}
}
