package mood

import (
	"math"
	"sort"
	"time"

	"art-therapy-server/modules/common/model"
)

const dayLayout = "2006-01-02"

// 분석 기간
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var periodDays = map[string]int{
	PeriodWeek:  7,
	PeriodMonth: 30,
	PeriodYear:  365,
}

// Analytics - GET /mood/analytics 응답 data
type Analytics struct {
	Period              string         `json:"period"`
	TotalEntries        int            `json:"totalEntries"`
	EmotionDistribution map[string]int `json:"emotionDistribution"`
	AverageIntensity    float64        `json:"averageIntensity"`
	DailyData           []DailyMood    `json:"dailyData"`
}

// DailyMood - 하루 단위 집계 (averageIntensity는 반올림하지 않음)
type DailyMood struct {
	Date             string   `json:"date"`
	Emotions         []string `json:"emotions"`
	AverageIntensity float64  `json:"averageIntensity"`
}

// Window - 기간 이름을 일수로. 모르는 값은 week
func Window(period string) time.Duration {
	days, ok := periodDays[period]
	if !ok {
		days = periodDays[PeriodWeek]
	}
	return time.Duration(days) * 24 * time.Hour
}

// Summarize - 항목 목록을 집계. loc 기준 달력 날짜로 그룹핑
// period는 요청값 그대로 응답에 포함
func Summarize(period string, entries []model.MoodEntry, loc *time.Location) *Analytics {
	result := &Analytics{
		Period:              period,
		TotalEntries:        len(entries),
		EmotionDistribution: map[string]int{},
		DailyData:           []DailyMood{},
	}
	if len(entries) == 0 {
		return result
	}

	type dayBucket struct {
		emotions []string
		sum      int
	}
	days := map[string]*dayBucket{}

	total := 0
	for _, entry := range entries {
		result.EmotionDistribution[entry.Emotion]++
		total += entry.Intensity

		key := entry.Timestamp.In(loc).Format(dayLayout)
		bucket, ok := days[key]
		if !ok {
			bucket = &dayBucket{}
			days[key] = bucket
		}
		bucket.emotions = append(bucket.emotions, entry.Emotion)
		bucket.sum += entry.Intensity
	}

	result.AverageIntensity = math.Round(float64(total)/float64(len(entries))*10) / 10

	for date, bucket := range days {
		result.DailyData = append(result.DailyData, DailyMood{
			Date:             date,
			Emotions:         bucket.emotions,
			AverageIntensity: float64(bucket.sum) / float64(len(bucket.emotions)),
		})
	}
	// YYYY-MM-DD는 문자열 정렬 = 날짜 정렬
	sort.Slice(result.DailyData, func(i, j int) bool {
		return result.DailyData[i].Date < result.DailyData[j].Date
	})

	return result
}
