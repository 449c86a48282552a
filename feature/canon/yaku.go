package canon

// Yakuman is the doubles value recorded for each limit-hand yaku.
const Yakuman = 13

// YakuNames lists the yaku in id order as they appear in both log formats.
var YakuNames = [...]string{
	"門前清自摸和", "立直", "一発", "槍槓", "嶺上開花",
	"海底摸月", "河底撈魚", "平和", "断幺九", "一盃口",
	"自風 東", "自風 南", "自風 西", "自風 北",
	"場風 東", "場風 南", "場風 西", "場風 北",
	"役牌 白", "役牌 發", "役牌 中",
	"両立直", "七対子", "混全帯幺九", "一気通貫", "三色同順",
	"三色同刻", "三槓子", "対々和", "三暗刻", "小三元",
	"混老頭", "二盃口", "純全帯幺九", "混一色", "清一色",
	"人和", "天和", "地和", "大三元", "四暗刻",
	"四暗刻単騎", "字一色", "緑一色", "清老頭", "九蓮宝燈",
	"純正九蓮宝燈", "国士無双", "国士無双１３面", "大四喜", "小四喜",
	"四槓子", "ドラ", "裏ドラ", "赤ドラ",
}

var yakuIDs = func() map[string]int {
	m := make(map[string]int, len(YakuNames))
	for id, name := range YakuNames {
		m[name] = id
	}
	return m
}()

// YakuByName returns the id of the named yaku.
func YakuByName(name string) (int, bool) {
	id, ok := yakuIDs[name]
	return id, ok
}

// YakuName returns the name of a yaku id, or "" when the id is unknown.
func YakuName(id int) string {
	if id < 0 || id >= len(YakuNames) {
		return ""
	}
	return YakuNames[id]
}
