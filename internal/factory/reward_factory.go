package factory

import (
	"golang.org/x/text/language"

	"composer/internal/domain/model"
	"composer/internal/viewmodel"
)

type RewardViewModelFactory struct {
	localizer Localizer
}

// DI
func NewRewardViewModelFactory(localizer Localizer) *RewardViewModelFactory {
	return &RewardViewModelFactory{localizer: localizer}
}

// CreateViewModel は指定レベルの値引きだけを返す（レベル指定なしは全件）
func (f *RewardViewModelFactory) CreateViewModel(rewards []model.Reward, culture language.Tag, currencyCode string, levels ...model.RewardLevel) []viewmodel.RewardViewModel {
	out := make([]viewmodel.RewardViewModel, 0, len(rewards))
	for _, r := range rewards {
		if !hasLevel(levels, r.Level) {
			continue
		}
		desc := r.Description
		if desc == "" {
			desc = r.PromotionName
		}
		out = append(out, viewmodel.RewardViewModel{
			PromotionID: r.PromotionID,
			Description: desc,
			Amount:      f.localizer.FormatPriceIn(r.Amount, culture, currencyCode),
		})
	}
	return out
}

func hasLevel(levels []model.RewardLevel, l model.RewardLevel) bool {
	if len(levels) == 0 {
		return true
	}
	for _, v := range levels {
		if v == l {
			return true
		}
	}
	return false
}
