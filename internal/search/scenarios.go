package search

// scenario is a hand-authored result for trips home from a well-known area.
type scenario struct {
	name         string
	anchor       Coordinate
	fullTaxiFare int
	fullTaxiKm   float64
	options      []scenarioOption
}

type scenarioOption struct {
	summary string
	train   *TrainSegment
	taxi    *TaxiSegment
}

// scenarios are keyed by the station nearest the rider. Options are listed in
// authored order; results sort them by savings.
var scenarios = []scenario{
	{
		name:         "新宿",
		anchor:       Coordinate{Lat: 35.6896, Lng: 139.7006},
		fullTaxiFare: 4200,
		fullTaxiKm:   9.5,
		options: []scenarioOption{
			{
				summary: "JR中央線（快速）でそのまま荻窪へ",
				train:   &TrainSegment{Line: "JR中央線（快速）", From: "新宿", To: "荻窪", DepartureTime: "0:20", ArrivalTime: "0:33", Fare: 220},
			},
			{
				summary: "JR中央線で高円寺まで → タクシーで荻窪へ",
				train:   &TrainSegment{Line: "JR中央線（各駅停車）", From: "新宿", To: "高円寺", DepartureTime: "0:30", ArrivalTime: "0:37", Fare: 170},
				taxi:    &TaxiSegment{From: "高円寺駅", To: "荻窪駅", DistanceKm: 2.5, Fare: 1100, DurationMin: 8},
			},
			{
				summary: "タクシーで直接荻窪へ",
				taxi:    &TaxiSegment{From: "新宿駅", To: "荻窪駅", DistanceKm: 9.5, Fare: 4200, DurationMin: 25},
			},
		},
	},
	{
		name:         "渋谷",
		anchor:       Coordinate{Lat: 35.6581, Lng: 139.7017},
		fullTaxiFare: 5800,
		fullTaxiKm:   13.2,
		options: []scenarioOption{
			{
				summary: "JR山手線で新宿 → 中央線で中野まで → タクシーで荻窪へ",
				train:   &TrainSegment{Line: "JR山手線 → JR中央線", From: "渋谷", To: "中野", DepartureTime: "0:10", ArrivalTime: "0:28", Fare: 230},
				taxi:    &TaxiSegment{From: "中野駅", To: "荻窪駅", DistanceKm: 4.0, Fare: 1700, DurationMin: 12},
			},
			{
				summary: "京王井の頭線で明大前 → タクシーで荻窪へ",
				train:   &TrainSegment{Line: "京王井の頭線", From: "渋谷", To: "明大前", DepartureTime: "0:22", ArrivalTime: "0:31", Fare: 160},
				taxi:    &TaxiSegment{From: "明大前駅", To: "荻窪駅", DistanceKm: 5.5, Fare: 2400, DurationMin: 15},
			},
			{
				summary: "タクシーで直接荻窪へ",
				taxi:    &TaxiSegment{From: "渋谷駅", To: "荻窪駅", DistanceKm: 13.2, Fare: 5800, DurationMin: 30},
			},
		},
	},
	{
		name:         "六本木",
		anchor:       Coordinate{Lat: 35.6627, Lng: 139.7311},
		fullTaxiFare: 6400,
		fullTaxiKm:   14.5,
		options: []scenarioOption{
			{
				summary: "大江戸線で新宿西口 → タクシーで荻窪へ",
				train:   &TrainSegment{Line: "都営大江戸線", From: "六本木", To: "新宿西口", DepartureTime: "0:08", ArrivalTime: "0:18", Fare: 220},
				taxi:    &TaxiSegment{From: "新宿駅", To: "荻窪駅", DistanceKm: 9.5, Fare: 4200, DurationMin: 25},
			},
			{
				summary: "日比谷線で中目黒 → 銀座線で赤坂見附 → 丸ノ内線で新高円寺 → タクシー",
				train:   &TrainSegment{Line: "丸ノ内線（乗換あり）", From: "六本木", To: "新高円寺", DepartureTime: "0:01", ArrivalTime: "0:35", Fare: 330},
				taxi:    &TaxiSegment{From: "新高円寺駅", To: "荻窪駅", DistanceKm: 1.8, Fare: 900, DurationMin: 6},
			},
			{
				summary: "タクシーで直接荻窪へ",
				taxi:    &TaxiSegment{From: "六本木駅", To: "荻窪駅", DistanceKm: 14.5, Fare: 6400, DurationMin: 35},
			},
		},
	},
	{
		name:         "池袋",
		anchor:       Coordinate{Lat: 35.7295, Lng: 139.7109},
		fullTaxiFare: 5400,
		fullTaxiKm:   12.0,
		options: []scenarioOption{
			{
				summary: "丸ノ内線で荻窪へ直通",
				train:   &TrainSegment{Line: "丸ノ内線", From: "池袋", To: "荻窪", DepartureTime: "0:02", ArrivalTime: "0:35", Fare: 250},
			},
			{
				summary: "JR埼京線で新宿 → タクシーで荻窪へ",
				train:   &TrainSegment{Line: "JR埼京線", From: "池袋", To: "新宿", DepartureTime: "0:25", ArrivalTime: "0:31", Fare: 170},
				taxi:    &TaxiSegment{From: "新宿駅", To: "荻窪駅", DistanceKm: 9.5, Fare: 4200, DurationMin: 25},
			},
			{
				summary: "タクシーで直接荻窪へ",
				taxi:    &TaxiSegment{From: "池袋駅", To: "荻窪駅", DistanceKm: 12.0, Fare: 5400, DurationMin: 30},
			},
		},
	},
}

// result materialises the scenario. Segments are copied so callers may not
// alter the shared library.
func (s scenario) result(searchedAt string) *Result {
	options := make([]RouteOption, 0, len(s.options))
	for _, o := range s.options {
		var train *TrainSegment
		if o.train != nil {
			t := *o.train
			train = &t
		}
		var taxi *TaxiSegment
		if o.taxi != nil {
			t := *o.taxi
			taxi = &t
		}
		options = append(options, newOption(o.summary, train, taxi, s.fullTaxiFare))
	}
	sortBySavings(options)

	return &Result{
		CurrentLocation:    s.name + "駅周辺",
		Destination:        Home.Name,
		FullTaxiFare:       s.fullTaxiFare,
		FullTaxiDistanceKm: s.fullTaxiKm,
		Options:            options,
		SearchedAt:         searchedAt,
		IsDemo:             true,
	}
}
