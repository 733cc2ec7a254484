package eligibility

import "time"

const (
	defaultChangeCutoff     = 3 * time.Hour
	defaultSameDayChangeFee = 10_000
	defaultCancelFee        = 30_000
	defaultFreeCancelDays   = 7
)

// Policy константы правил изменения и отмены, все суммы в вонах
type Policy struct {
	ChangeCutoff     time.Duration
	SameDayChangeFee int64
	CancelFee        int64
	FreeCancelDays   int

	// Location задаёт календарь для сравнения дат "сегодня" и "день доставки"
	Location *time.Location
}

// В Корее нет перехода на летнее время, фиксированной зоны достаточно
var seoul = time.FixedZone("Asia/Seoul", 9*60*60)

func DefaultPolicy() Policy {
	return Policy{
		ChangeCutoff:     defaultChangeCutoff,
		SameDayChangeFee: defaultSameDayChangeFee,
		CancelFee:        defaultCancelFee,
		FreeCancelDays:   defaultFreeCancelDays,
		Location:         seoul,
	}
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return seoul
	}
	return p.Location
}
