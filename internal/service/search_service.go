package service

import (
	"context"
	"strings"
	"time"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/metrics"
	"vidshare-go/internal/model"
	"vidshare-go/pkg/logger"

	"go.uber.org/zap"
)

const searchTimeout = 10 * time.Second

type SearchService struct {
	videoRepo VideoRepository
	searcher  VideoSearcher
}

// NewSearchService searcher 为 nil 时直接走数据库
func NewSearchService(videoRepo VideoRepository, searcher VideoSearcher) *SearchService {
	return &SearchService{videoRepo: videoRepo, searcher: searcher}
}

// Search 按标题或频道名做不区分大小写的子串匹配，返回全部命中，标题命中在前，按 ID 去重
// ES 优先，失败则降级到数据库
func (s *SearchService) Search(ctx context.Context, q string) ([]dto.VideoInfo, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []dto.VideoInfo{}, nil
	}

	if s.searcher != nil {
		videos, err := s.searchFromES(ctx, q)
		if err == nil {
			return toVideoInfos(videos), nil
		}
		metrics.SearchFallbacks.Inc()
		logger.Warn("ES search failed, fallback to DB", zap.String("q", q), zap.Error(err))
	}

	videos, err := s.searchFromDB(q)
	if err != nil {
		return nil, err
	}
	return toVideoInfos(videos), nil
}

func (s *SearchService) searchFromES(ctx context.Context, q string) ([]model.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	ids, err := s.searcher.SearchVideoIDs(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.Video{}, nil
	}

	videos, err := s.videoRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	return orderByIDs(videos, ids), nil
}

func (s *SearchService) searchFromDB(q string) ([]model.Video, error) {
	byTitle, err := s.videoRepo.SearchByTitle(q)
	if err != nil {
		return nil, err
	}
	byChannel, err := s.videoRepo.SearchByChannelName(q)
	if err != nil {
		return nil, err
	}
	return unionVideos(byTitle, byChannel), nil
}

// unionVideos 标题命中在前，频道命中中已出现的视频跳过
func unionVideos(byTitle, byChannel []model.Video) []model.Video {
	seen := make(map[int64]struct{}, len(byTitle)+len(byChannel))
	result := make([]model.Video, 0, len(byTitle)+len(byChannel))
	for _, group := range [][]model.Video{byTitle, byChannel} {
		for i := range group {
			if _, ok := seen[group[i].ID]; ok {
				continue
			}
			seen[group[i].ID] = struct{}{}
			result = append(result, group[i])
		}
	}
	return result
}

// orderByIDs 按 ES 返回的顺序排列，索引中存在但库中已删除的视频被跳过
func orderByIDs(videos []model.Video, ids []int64) []model.Video {
	byID := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = &videos[i]
	}
	ordered := make([]model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, *v)
			delete(byID, id)
		}
	}
	return ordered
}
