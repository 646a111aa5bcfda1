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
)

var _ IThumbnailTemplateService = (*ThumbnailTemplateService)(nil)

type IThumbnailTemplateService interface {
	Create(ctx context.Context, req *types.SaveThumbnailTemplateReq) (*types.CreateTemplateResp, error)
	Update(ctx context.Context, id int64, req *types.SaveThumbnailTemplateReq) error
	Get(ctx context.Context, id int64) (*types.ThumbnailTemplateInfo, error)
	List(ctx context.Context) ([]*types.ThumbnailTemplateInfo, error)
	Delete(ctx context.Context, id int64) error
}

type ThumbnailTemplateService struct {
	Config       *config.Config
	ThumbnailDAO *dao.ThumbnailTemplate
	ChannelDAO   *dao.Channel
}

func (s *ThumbnailTemplateService) Create(ctx context.Context, req *types.SaveThumbnailTemplateReq) (*types.CreateTemplateResp, error) {
	tt := buildThumbnailTemplate(req)
	if err := verifyThumbnailTemplate(tt); err != nil {
		return nil, err
	}

	tt.ID = snowflake.GenID()
	if err := s.ThumbnailDAO.Create(ctx, tt); err != nil {
		return nil, err
	}
	return &types.CreateTemplateResp{
		ID:         tt.ID,
		PublicCode: utils.GenHashID(s.Config.App.SecretKey, int(tt.ID)),
	}, nil
}

func (s *ThumbnailTemplateService) Update(ctx context.Context, id int64, req *types.SaveThumbnailTemplateReq) error {
	if _, err := s.ThumbnailDAO.FindByID(ctx, id); err != nil {
		return response.NewError(404, "封面模板不存在")
	}

	tt := buildThumbnailTemplate(req)
	tt.ID = id
	if err := verifyThumbnailTemplate(tt); err != nil {
		return err
	}
	return s.ThumbnailDAO.Save(ctx, tt)
}

func (s *ThumbnailTemplateService) Get(ctx context.Context, id int64) (*types.ThumbnailTemplateInfo, error) {
	tt, err := s.ThumbnailDAO.FindByID(ctx, id)
	if err != nil {
		return nil, response.NewError(404, "封面模板不存在")
	}
	return &types.ThumbnailTemplateInfo{
		ThumbnailTemplate: *tt,
		PublicCode:        utils.GenHashID(s.Config.App.SecretKey, int(tt.ID)),
	}, nil
}

func (s *ThumbnailTemplateService) List(ctx context.Context) ([]*types.ThumbnailTemplateInfo, error) {
	templates, err := s.ThumbnailDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]*types.ThumbnailTemplateInfo, 0, len(templates))
	for i := range templates {
		infos = append(infos, &types.ThumbnailTemplateInfo{
			ThumbnailTemplate: templates[i],
			PublicCode:        utils.GenHashID(s.Config.App.SecretKey, int(templates[i].ID)),
		})
	}
	return infos, nil
}

// Delete 仍被频道引用的封面模板不允许删除
func (s *ThumbnailTemplateService) Delete(ctx context.Context, id int64) error {
	channels, _, err := s.ChannelDAO.ListChannels(ctx, false, 0, 0)
	if err != nil {
		return err
	}
	for i := range channels {
		for _, tid := range channels[i].ThumbnailIDs {
			if tid == id {
				return response.NewError(400, "封面模板被频道引用，无法删除")
			}
		}
	}
	return s.ThumbnailDAO.DeleteByID(ctx, id)
}

func verifyThumbnailTemplate(tt *models.ThumbnailTemplate) error {
	if errs := validation.ValidateThumbnailTemplate(tt); len(errs) > 0 {
		return NewValidationError(errs)
	}
	validation.StripThumbnailTemplate(tt, validation.ThumbnailTemplateActiveFields(tt))
	return nil
}

func buildThumbnailTemplate(req *types.SaveThumbnailTemplateReq) *models.ThumbnailTemplate {
	return &models.ThumbnailTemplate{
		Name:             req.Name,
		Type:             req.Type,
		Prompt:           req.Prompt,
		Model:            req.Model,
		FallbackModel:    req.FallbackModel,
		FallbackStrategy: req.FallbackStrategy,
	}
}
