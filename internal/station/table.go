package station

// table lists major stations around central Tokyo. Order is significant:
// it is the tie-break order for searches and nearest-station lookups.
var table = []Station{
	// JR中央線
	{Name: "東京", Lat: 35.6812, Lng: 139.7671, Lines: []string{"JR中央線", "JR山手線", "丸ノ内線"}},
	{Name: "神田", Lat: 35.6918, Lng: 139.7709, Lines: []string{"JR中央線", "JR山手線", "銀座線"}},
	{Name: "御茶ノ水", Lat: 35.6994, Lng: 139.7653, Lines: []string{"JR中央線", "丸ノ内線"}},
	{Name: "四ツ谷", Lat: 35.6860, Lng: 139.7300, Lines: []string{"JR中央線", "丸ノ内線", "南北線"}},
	{Name: "新宿", Lat: 35.6896, Lng: 139.7006, Lines: []string{"JR中央線", "JR山手線", "丸ノ内線", "都営新宿線", "都営大江戸線", "京王線", "小田急線"}},
	{Name: "中野", Lat: 35.7074, Lng: 139.6659, Lines: []string{"JR中央線", "東西線"}},
	{Name: "高円寺", Lat: 35.7054, Lng: 139.6496, Lines: []string{"JR中央線"}},
	{Name: "阿佐ヶ谷", Lat: 35.7043, Lng: 139.6355, Lines: []string{"JR中央線"}},
	{Name: "荻窪", Lat: 35.7041, Lng: 139.6199, Lines: []string{"JR中央線", "丸ノ内線"}},
	{Name: "西荻窪", Lat: 35.7032, Lng: 139.5998, Lines: []string{"JR中央線"}},
	{Name: "吉祥寺", Lat: 35.7030, Lng: 139.5796, Lines: []string{"JR中央線", "京王井の頭線"}},
	{Name: "三鷹", Lat: 35.7028, Lng: 139.5607, Lines: []string{"JR中央線"}},
	{Name: "国分寺", Lat: 35.7009, Lng: 139.4804, Lines: []string{"JR中央線", "西武国分寺線"}},
	{Name: "立川", Lat: 35.6979, Lng: 139.4138, Lines: []string{"JR中央線", "JR南武線", "多摩モノレール"}},

	// JR山手線
	{Name: "渋谷", Lat: 35.6581, Lng: 139.7017, Lines: []string{"JR山手線", "銀座線", "半蔵門線", "副都心線", "東急東横線", "京王井の頭線"}},
	{Name: "原宿", Lat: 35.6702, Lng: 139.7026, Lines: []string{"JR山手線", "副都心線"}},
	{Name: "代々木", Lat: 35.6836, Lng: 139.7020, Lines: []string{"JR山手線", "都営大江戸線"}},
	{Name: "池袋", Lat: 35.7295, Lng: 139.7109, Lines: []string{"JR山手線", "丸ノ内線", "副都心線", "有楽町線", "東武東上線", "西武池袋線"}},
	{Name: "目黒", Lat: 35.6337, Lng: 139.7158, Lines: []string{"JR山手線", "南北線", "都営三田線", "東急目黒線"}},
	{Name: "恵比寿", Lat: 35.6467, Lng: 139.7101, Lines: []string{"JR山手線", "日比谷線"}},
	{Name: "品川", Lat: 35.6284, Lng: 139.7387, Lines: []string{"JR山手線", "JR東海道線", "京急線"}},
	{Name: "田町", Lat: 35.6457, Lng: 139.7475, Lines: []string{"JR山手線", "都営三田線"}},
	{Name: "浜松町", Lat: 35.6555, Lng: 139.7568, Lines: []string{"JR山手線", "都営大江戸線", "東京モノレール"}},
	{Name: "新橋", Lat: 35.6660, Lng: 139.7583, Lines: []string{"JR山手線", "銀座線", "都営浅草線", "ゆりかもめ"}},
	{Name: "有楽町", Lat: 35.6748, Lng: 139.7630, Lines: []string{"JR山手線", "有楽町線"}},
	{Name: "秋葉原", Lat: 35.6984, Lng: 139.7731, Lines: []string{"JR山手線", "JR総武線", "日比谷線", "つくばエクスプレス"}},
	{Name: "上野", Lat: 35.7141, Lng: 139.7774, Lines: []string{"JR山手線", "銀座線", "日比谷線", "京成線"}},
	{Name: "日暮里", Lat: 35.7280, Lng: 139.7708, Lines: []string{"JR山手線", "京成線", "日暮里・舎人ライナー"}},
	{Name: "大塚", Lat: 35.7318, Lng: 139.7286, Lines: []string{"JR山手線"}},
	{Name: "巣鴨", Lat: 35.7336, Lng: 139.7394, Lines: []string{"JR山手線", "都営三田線"}},
	{Name: "駒込", Lat: 35.7364, Lng: 139.7470, Lines: []string{"JR山手線", "南北線"}},
	{Name: "高田馬場", Lat: 35.7121, Lng: 139.7038, Lines: []string{"JR山手線", "東西線", "西武新宿線"}},

	// 丸ノ内線
	{Name: "銀座", Lat: 35.6717, Lng: 139.7637, Lines: []string{"銀座線", "丸ノ内線", "日比谷線"}},
	{Name: "赤坂見附", Lat: 35.6770, Lng: 139.7370, Lines: []string{"銀座線", "丸ノ内線"}},
	{Name: "新高円寺", Lat: 35.6951, Lng: 139.6447, Lines: []string{"丸ノ内線"}},
	{Name: "南阿佐ヶ谷", Lat: 35.6979, Lng: 139.6353, Lines: []string{"丸ノ内線"}},

	// 主要ターミナル・繁華街
	{Name: "六本木", Lat: 35.6627, Lng: 139.7311, Lines: []string{"日比谷線", "都営大江戸線"}},
	{Name: "赤坂", Lat: 35.6729, Lng: 139.7371, Lines: []string{"千代田線"}},
	{Name: "表参道", Lat: 35.6653, Lng: 139.7122, Lines: []string{"銀座線", "半蔵門線", "千代田線"}},
	{Name: "中目黒", Lat: 35.6443, Lng: 139.6989, Lines: []string{"日比谷線", "東急東横線"}},
	{Name: "三軒茶屋", Lat: 35.6437, Lng: 139.6700, Lines: []string{"東急田園都市線", "東急世田谷線"}},
	{Name: "下北沢", Lat: 35.6612, Lng: 139.6676, Lines: []string{"小田急線", "京王井の頭線"}},
	{Name: "明大前", Lat: 35.6683, Lng: 139.6510, Lines: []string{"京王線", "京王井の頭線"}},
	{Name: "永田町", Lat: 35.6783, Lng: 139.7385, Lines: []string{"有楽町線", "半蔵門線", "南北線"}},
	{Name: "飯田橋", Lat: 35.7020, Lng: 139.7451, Lines: []string{"JR総武線", "東西線", "有楽町線", "南北線", "都営大江戸線"}},
	{Name: "大手町", Lat: 35.6863, Lng: 139.7639, Lines: []string{"丸ノ内線", "東西線", "千代田線", "半蔵門線", "都営三田線"}},
	{Name: "日本橋", Lat: 35.6819, Lng: 139.7745, Lines: []string{"銀座線", "東西線", "都営浅草線"}},
	{Name: "北千住", Lat: 35.7497, Lng: 139.8050, Lines: []string{"JR常磐線", "千代田線", "日比谷線", "東武スカイツリーライン", "つくばエクスプレス"}},
	{Name: "錦糸町", Lat: 35.6964, Lng: 139.8147, Lines: []string{"JR総武線", "半蔵門線"}},
	{Name: "押上", Lat: 35.7107, Lng: 139.8131, Lines: []string{"半蔵門線", "都営浅草線", "京成押上線", "東武スカイツリーライン"}},
	{Name: "横浜", Lat: 35.4658, Lng: 139.6223, Lines: []string{"JR東海道線", "JR横須賀線", "東急東横線", "京急線", "相鉄線", "横浜市営地下鉄"}},
	{Name: "川崎", Lat: 35.5308, Lng: 139.7030, Lines: []string{"JR東海道線", "JR南武線", "京急線"}},
	{Name: "武蔵小杉", Lat: 35.5762, Lng: 139.6595, Lines: []string{"JR南武線", "JR横須賀線", "東急東横線"}},
	{Name: "大宮", Lat: 35.9063, Lng: 139.6237, Lines: []string{"JR京浜東北線", "JR高崎線", "JR宇都宮線", "東武野田線", "ニューシャトル"}},
	{Name: "赤羽", Lat: 35.7778, Lng: 139.7209, Lines: []string{"JR京浜東北線", "JR埼京線", "JR宇都宮線"}},
	{Name: "蒲田", Lat: 35.5625, Lng: 139.7161, Lines: []string{"JR京浜東北線", "東急池上線", "東急多摩川線"}},
	{Name: "五反田", Lat: 35.6260, Lng: 139.7232, Lines: []string{"JR山手線", "都営浅草線", "東急池上線"}},
	{Name: "新橋", Lat: 35.6660, Lng: 139.7583, Lines: []string{"JR山手線", "銀座線", "都営浅草線", "ゆりかもめ"}},
	{Name: "神保町", Lat: 35.6959, Lng: 139.7577, Lines: []string{"半蔵門線", "都営三田線", "都営新宿線"}},
	{Name: "九段下", Lat: 35.6951, Lng: 139.7513, Lines: []string{"東西線", "半蔵門線", "都営新宿線"}},
	{Name: "市ヶ谷", Lat: 35.6914, Lng: 139.7361, Lines: []string{"JR総武線", "有楽町線", "南北線", "都営新宿線"}},
	{Name: "溜池山王", Lat: 35.6736, Lng: 139.7410, Lines: []string{"銀座線", "南北線"}},
	{Name: "虎ノ門", Lat: 35.6685, Lng: 139.7503, Lines: []string{"銀座線", "日比谷線"}},
	{Name: "麻布十番", Lat: 35.6553, Lng: 139.7368, Lines: []string{"南北線", "都営大江戸線"}},
	{Name: "広尾", Lat: 35.6512, Lng: 139.7225, Lines: []string{"日比谷線"}},
	{Name: "西新宿", Lat: 35.6943, Lng: 139.6923, Lines: []string{"丸ノ内線"}},
	{Name: "東中野", Lat: 35.7075, Lng: 139.6823, Lines: []string{"JR総武線", "都営大江戸線"}},
	{Name: "方南町", Lat: 35.6838, Lng: 139.6473, Lines: []string{"丸ノ内線"}},
}
