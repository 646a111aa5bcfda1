package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"Reelgen/dao"
	"Reelgen/dao/cache"
	"Reelgen/models"
	"Reelgen/pkg/llm"
	"Reelgen/pkg/log"
	"Reelgen/pkg/modelfamily"
	"Reelgen/pkg/response"
	"Reelgen/pkg/secret"
	"Reelgen/types"

	"github.com/sourcegraph/conc/pool"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// API Key 类设置项的 key 前缀，值落库前加密，读取时只回掩码
const secretKeyPrefix = "api_key"

var _ ISettingsService = (*SettingsService)(nil)

type ISettingsService interface {
	GetSetting(ctx context.Context, key string) (*types.GetSettingResp, error)
	SaveSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error

	ListModels(ctx context.Context) (*types.ModelCatalogResp, error)
	AddModel(ctx context.Context, model string) (*types.ModelCatalogResp, error)
	RemoveModel(ctx context.Context, model string) (*types.ModelCatalogResp, error)
	SyncModelCatalog(ctx context.Context) (*types.ModelCatalogResp, error)

	MigrateModelConfig(cfg modelfamily.Config, newModel string) modelfamily.Config
}

type SettingsService struct {
	SettingDAO *dao.Setting
	Storage    *cache.SettingsStorage
	Sealer     *secret.Sealer
	Catalogs   []*llm.Client
}

func isSecretKey(key string) bool {
	return strings.HasPrefix(key, secretKeyPrefix)
}

// maskValue 只露出尾部 4 位
func maskValue(v string) string {
	if len(v) <= 4 {
		return "****"
	}
	return "****" + v[len(v)-4:]
}

func (s *SettingsService) GetSetting(ctx context.Context, key string) (*types.GetSettingResp, error) {
	value, err := s.rawValue(ctx, key)
	if err != nil {
		return nil, err
	}

	if isSecretKey(key) {
		plain, err := s.Sealer.Open(value)
		if err != nil {
			return nil, err
		}
		value = maskValue(plain)
	}
	return &types.GetSettingResp{Key: key, Value: value}, nil
}

func (s *SettingsService) SaveSetting(ctx context.Context, key, value string) error {
	kind := models.SettingKindString
	if isSecretKey(key) {
		sealed, err := s.Sealer.Seal(value)
		if err != nil {
			return err
		}
		value = sealed
	}
	return s.store(ctx, key, kind, value)
}

func (s *SettingsService) DeleteSetting(ctx context.Context, key string) error {
	if err := s.SettingDAO.DeleteByKey(ctx, key); err != nil {
		return err
	}
	return s.Storage.Del(ctx, key)
}

// rawValue 先查缓存再回源 MySQL
func (s *SettingsService) rawValue(ctx context.Context, key string) (string, error) {
	if value, ok := s.Storage.Get(ctx, key); ok {
		return value, nil
	}

	setting, err := s.SettingDAO.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", response.NewError(404, "设置项不存在")
		}
		return "", err
	}
	_ = s.Storage.Set(ctx, key, setting.Value)
	return setting.Value, nil
}

func (s *SettingsService) store(ctx context.Context, key, kind, value string) error {
	err := s.SettingDAO.Upsert(ctx, &models.Setting{
		Key:   key,
		Kind:  kind,
		Value: value,
	})
	if err != nil {
		return err
	}
	return s.Storage.Set(ctx, key, value)
}

// ListModels 读已启用模型目录，目录不存在时返回空列表
func (s *SettingsService) ListModels(ctx context.Context) (*types.ModelCatalogResp, error) {
	ids, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return &types.ModelCatalogResp{Models: ids}, nil
}

func (s *SettingsService) catalog(ctx context.Context) ([]string, error) {
	value, err := s.rawValue(ctx, models.KeyModelCatalog)
	if err != nil {
		var be *response.BizError
		if errors.As(err, &be) && be.Code == 404 {
			return []string{}, nil
		}
		return nil, err
	}

	results := gjson.Parse(value).Array()
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.String())
	}
	return ids, nil
}

func (s *SettingsService) saveCatalog(ctx context.Context, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.store(ctx, models.KeyModelCatalog, models.SettingKindStringList, string(raw))
}

// AddModel 目录按加入顺序去重，重复加入是幂等的
func (s *SettingsService) AddModel(ctx context.Context, model string) (*types.ModelCatalogResp, error) {
	if model == "" {
		return nil, response.NewError(400, "模型 ID 不能为空")
	}

	ids, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	ids = appendUnique(ids, model)
	if err := s.saveCatalog(ctx, ids); err != nil {
		return nil, err
	}
	return &types.ModelCatalogResp{Models: ids}, nil
}

func (s *SettingsService) RemoveModel(ctx context.Context, model string) (*types.ModelCatalogResp, error) {
	ids, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != model {
			kept = append(kept, id)
		}
	}
	if err := s.saveCatalog(ctx, kept); err != nil {
		return nil, err
	}
	return &types.ModelCatalogResp{Models: kept}, nil
}

// SyncModelCatalog 并发拉取各端点的模型列表，按端点配置顺序合并进目录
func (s *SettingsService) SyncModelCatalog(ctx context.Context) (*types.ModelCatalogResp, error) {
	if len(s.Catalogs) == 0 {
		return nil, response.NewError(400, "未配置模型端点")
	}

	fetched := make([][]string, len(s.Catalogs))
	p := pool.New().WithContext(ctx).WithCancelOnError()
	for i, client := range s.Catalogs {
		p.Go(func(ctx context.Context) error {
			ids, err := client.ListModels(ctx)
			if err != nil {
				return err
			}
			fetched[i] = ids
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		log.L.Error("sync model catalog failed", zap.Error(err))
		return nil, err
	}

	ids, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	for _, batch := range fetched {
		for _, id := range batch {
			ids = appendUnique(ids, id)
		}
	}

	if err := s.saveCatalog(ctx, ids); err != nil {
		return nil, err
	}
	return &types.ModelCatalogResp{Models: ids}, nil
}

// MigrateModelConfig 前端切换模型时换算参数
func (s *SettingsService) MigrateModelConfig(cfg modelfamily.Config, newModel string) modelfamily.Config {
	return modelfamily.Migrate(cfg, newModel)
}

func appendUnique(ids []string, id string) []string {
	for _, exist := range ids {
		if exist == id {
			return ids
		}
	}
	return append(ids, id)
}
