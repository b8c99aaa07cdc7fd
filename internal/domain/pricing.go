package domain

import (
	"math"
	"time"
)

// PriceBreakdown detailed rental price computed at booking time
type PriceBreakdown struct {
	Days                 int
	BasePrice            float64
	SubscriptionDiscount float64
	PromotionDiscount    float64
	Total                float64
}

// RentalDays возвращает количество оплачиваемых дней аренды
// День считается за каждые начавшиеся 24 часа, минимум один день
func RentalDays(startAt, endAt time.Time) int {
	hours := endAt.Sub(startAt).Hours()
	days := int(math.Ceil(hours / HoursPerRentalDay))
	if days < 1 {
		days = 1
	}
	return days
}

// CalculatePrice вычисляет стоимость аренды со скидками
//
// Скидки суммируются, а не перемножаются: каждая считается
// от базовой цены, затем обе вычитаются.
// subscriptionPercent - процент скидки активной подписки (0 = нет подписки)
// promo - валидный промокод (nil = без промокода); валидность кода
// проверяется до вызова, здесь только арифметика
func CalculatePrice(dailyRate float64, startAt, endAt time.Time, subscriptionPercent float64, promo *Promotion) PriceBreakdown {
	days := RentalDays(startAt, endAt)
	basePrice := round2(dailyRate * float64(days))

	subscriptionDiscount := round2(basePrice * subscriptionPercent / 100)

	var promotionDiscount float64
	if promo != nil {
		promotionDiscount = basePrice * promo.Percent / 100
		if promo.MaxDiscountAmount > 0 && promotionDiscount > promo.MaxDiscountAmount {
			promotionDiscount = promo.MaxDiscountAmount
		}
		promotionDiscount = round2(promotionDiscount)
	}

	total := round2(basePrice - subscriptionDiscount - promotionDiscount)
	if total < 0 {
		total = 0
	}

	return PriceBreakdown{
		Days:                 days,
		BasePrice:            basePrice,
		SubscriptionDiscount: subscriptionDiscount,
		PromotionDiscount:    promotionDiscount,
		Total:                total,
	}
}

// round2 округляет сумму до копеек
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
