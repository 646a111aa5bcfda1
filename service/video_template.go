package service

import (
	"context"

	"Reelgen/config"
	"Reelgen/dao"
	"Reelgen/models"
	"Reelgen/pkg/response"
	"Reelgen/pkg/snowflake"
	"Reelgen/pkg/utils"
	"Reelgen/types"
	"Reelgen/validation"

	"gorm.io/datatypes"
)

var _ IVideoTemplateService = (*VideoTemplateService)(nil)

type IVideoTemplateService interface {
	Create(ctx context.Context, req *types.SaveVideoTemplateReq) (*types.CreateTemplateResp, error)
	Update(ctx context.Context, id int64, req *types.SaveVideoTemplateReq) error
	Get(ctx context.Context, id int64) (*types.VideoTemplateInfo, error)
	List(ctx context.Context, videoType string) ([]*types.VideoTemplateInfo, error)
	Delete(ctx context.Context, id int64) error
}

type VideoTemplateService struct {
	Config   *config.Config
	VideoDAO *dao.VideoTemplate
}

func (s *VideoTemplateService) Create(ctx context.Context, req *types.SaveVideoTemplateReq) (*types.CreateTemplateResp, error) {
	vt := buildVideoTemplate(req)
	if err := verifyVideoTemplate(vt); err != nil {
		return nil, err
	}

	vt.ID = snowflake.GenID()
	if err := s.VideoDAO.Create(ctx, vt); err != nil {
		return nil, err
	}
	return &types.CreateTemplateResp{
		ID:         vt.ID,
		PublicCode: utils.GenHashID(s.Config.App.SecretKey, int(vt.ID)),
	}, nil
}

func (s *VideoTemplateService) Update(ctx context.Context, id int64, req *types.SaveVideoTemplateReq) error {
	if _, err := s.VideoDAO.FindByID(ctx, id); err != nil {
		return response.NewError(404, "视频模板不存在")
	}

	vt := buildVideoTemplate(req)
	vt.ID = id
	if err := verifyVideoTemplate(vt); err != nil {
		return err
	}
	return s.VideoDAO.Save(ctx, vt)
}

func (s *VideoTemplateService) Get(ctx context.Context, id int64) (*types.VideoTemplateInfo, error) {
	vt, err := s.VideoDAO.FindByID(ctx, id)
	if err != nil {
		return nil, response.NewError(404, "视频模板不存在")
	}
	return &types.VideoTemplateInfo{
		VideoTemplate: *vt,
		PublicCode:    utils.GenHashID(s.Config.App.SecretKey, int(vt.ID)),
	}, nil
}

// List videoType 为空时返回全部
func (s *VideoTemplateService) List(ctx context.Context, videoType string) ([]*types.VideoTemplateInfo, error) {
	var (
		templates []models.VideoTemplate
		err       error
	)
	if videoType == "" {
		templates, err = s.VideoDAO.ListAll(ctx)
	} else {
		templates, err = s.VideoDAO.ListByType(ctx, videoType)
	}
	if err != nil {
		return nil, err
	}

	infos := make([]*types.VideoTemplateInfo, 0, len(templates))
	for i := range templates {
		infos = append(infos, &types.VideoTemplateInfo{
			VideoTemplate: templates[i],
			PublicCode:    utils.GenHashID(s.Config.App.SecretKey, int(templates[i].ID)),
		})
	}
	return infos, nil
}

func (s *VideoTemplateService) Delete(ctx context.Context, id int64) error {
	return s.VideoDAO.DeleteByID(ctx, id)
}

func verifyVideoTemplate(vt *models.VideoTemplate) error {
	if errs := validation.ValidateVideoTemplate(vt); len(errs) > 0 {
		return NewValidationError(errs)
	}
	validation.StripVideoTemplate(vt, validation.VideoTemplateActiveFields(vt))
	return nil
}

func buildVideoTemplate(req *types.SaveVideoTemplateReq) *models.VideoTemplate {
	return &models.VideoTemplate{
		Name: req.Name,
		Type: req.Type,

		HookPrompt:         req.HookPrompt,
		StoryOutlinePrompt: req.StoryOutlinePrompt,
		ImagePrompt:        req.ImagePrompt,

		ImageModel:         req.ImageModel,
		FallbackImageModel: req.FallbackImageModel,
		AudioModel:         req.AudioModel,
		AudioVoices:        datatypes.JSONSlice[string](req.AudioVoices),
		AudioPauseGap:      req.AudioPauseGap,

		BgMusicPrompt: req.BgMusicPrompt,
		BgMusicVolume: req.BgMusicVolume,

		Effects:  req.Effects,
		Captions: req.Captions,

		TransitionStyle:    req.TransitionStyle,
		TransitionDuration: req.TransitionDuration,
	}
}
