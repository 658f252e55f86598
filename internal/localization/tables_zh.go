package localization

import "golang.org/x/text/language"

// SimplifiedChinese is the default display catalog
var SimplifiedChinese = &Catalog{
	Tag: language.SimplifiedChinese,
	Types: map[string]string{
		"normal":   "一般",
		"fire":     "火",
		"water":    "水",
		"electric": "电",
		"grass":    "草",
		"ice":      "冰",
		"fighting": "格斗",
		"poison":   "毒",
		"ground":   "地面",
		"flying":   "飞行",
		"psychic":  "超能力",
		"bug":      "虫",
		"rock":     "岩石",
		"ghost":    "幽灵",
		"dark":     "恶",
		"dragon":   "龙",
		"steel":    "钢",
		"fairy":    "妖精",
	},
	Stats: map[string]string{
		"hp":              "HP",
		"attack":          "攻击",
		"defense":         "防御",
		"special-attack":  "特攻",
		"special-defense": "特防",
		"speed":           "速度",
	},
	Triggers: map[string]string{
		"level-up":            "等级提升",
		"use-item":            "使用道具",
		"trade":               "交换",
		"shed":                "脱壳",
		"spin":                "旋转",
		"tower-of-darkness":   "黑暗塔",
		"tower-of-waters":     "水源塔",
		"three-critical-hits": "三次暴击",
		"take-damage":         "受到伤害",
		"other":               "其他",
		"agile-style-move":    "敏捷风格招式",
		"strong-style-move":   "强力风格招式",
		"recoil-damage":       "反伤",
	},
	TimesOfDay: map[string]string{
		"day":   "白天",
		"night": "夜晚",
	},
	Phrases: Phrases{
		Level:         "Lv.%d",
		HeldItem:      "携带%s",
		Happiness:     "亲密度≥%d",
		Beauty:        "美丽度≥%d",
		Affection:     "羁绊≥%d",
		Location:      "地点:%s",
		KnownMove:     "学会招式:%s",
		KnownMoveType: "招式类型:%s",
		PartySpecies:  "队伍有:%s",
		PartyType:     "队伍有%s系",
		Rain:          "下雨时",
	},
}
