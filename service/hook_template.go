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

var _ IHookTemplateService = (*HookTemplateService)(nil)

type IHookTemplateService interface {
	Create(ctx context.Context, req *types.SaveHookTemplateReq) (*types.CreateTemplateResp, error)
	Update(ctx context.Context, id int64, req *types.SaveHookTemplateReq) error
	Get(ctx context.Context, id int64) (*types.HookTemplateInfo, error)
	List(ctx context.Context) ([]*types.HookTemplateInfo, error)
	Delete(ctx context.Context, id int64) error
}

type HookTemplateService struct {
	Config  *config.Config
	HookDAO *dao.HookTemplate
}

func (s *HookTemplateService) Create(ctx context.Context, req *types.SaveHookTemplateReq) (*types.CreateTemplateResp, error) {
	ht := buildHookTemplate(req)
	if errs := validation.ValidateHookTemplate(ht); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	ht.ID = snowflake.GenID()
	if err := s.HookDAO.Create(ctx, ht); err != nil {
		return nil, err
	}
	return &types.CreateTemplateResp{
		ID:         ht.ID,
		PublicCode: utils.GenHashID(s.Config.App.SecretKey, int(ht.ID)),
	}, nil
}

func (s *HookTemplateService) Update(ctx context.Context, id int64, req *types.SaveHookTemplateReq) error {
	if _, err := s.HookDAO.FindByID(ctx, id); err != nil {
		return response.NewError(404, "钩子模板不存在")
	}

	ht := buildHookTemplate(req)
	ht.ID = id
	if errs := validation.ValidateHookTemplate(ht); len(errs) > 0 {
		return NewValidationError(errs)
	}
	return s.HookDAO.Save(ctx, ht)
}

func (s *HookTemplateService) Get(ctx context.Context, id int64) (*types.HookTemplateInfo, error) {
	ht, err := s.HookDAO.FindByID(ctx, id)
	if err != nil {
		return nil, response.NewError(404, "钩子模板不存在")
	}
	return &types.HookTemplateInfo{
		HookTemplate: *ht,
		PublicCode:   utils.GenHashID(s.Config.App.SecretKey, int(ht.ID)),
	}, nil
}

func (s *HookTemplateService) List(ctx context.Context) ([]*types.HookTemplateInfo, error) {
	templates, err := s.HookDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]*types.HookTemplateInfo, 0, len(templates))
	for i := range templates {
		infos = append(infos, &types.HookTemplateInfo{
			HookTemplate: templates[i],
			PublicCode:   utils.GenHashID(s.Config.App.SecretKey, int(templates[i].ID)),
		})
	}
	return infos, nil
}

func (s *HookTemplateService) Delete(ctx context.Context, id int64) error {
	return s.HookDAO.DeleteByID(ctx, id)
}

func buildHookTemplate(req *types.SaveHookTemplateReq) *models.HookTemplate {
	return &models.HookTemplate{
		Name:      req.Name,
		Prompt:    req.Prompt,
		Duration:  req.Duration,
		EditSpeed: req.EditSpeed,
	}
}
