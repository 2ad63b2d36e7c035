// Package entity 定义领域实体
package entity

import "strings"

// UnnamedCharacter 角色未命名时使用的占位
const UnnamedCharacter = "Unnamed"

// CharacterProfile 玩家角色设定，除 Name 外均为客户端枚举值
type CharacterProfile struct {
	Name        string `json:"name,omitempty"`
	Age         string `json:"age"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
	Occupation  string `json:"occupation"`
	Outfit      string `json:"outfit"`
	ArtStyle    string `json:"artStyle"`
}

// DisplayName 返回角色名，未填写时返回占位
func (p CharacterProfile) DisplayName() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return UnnamedCharacter
}

// BackgroundProfile 场景设定
type BackgroundProfile struct {
	Space       string `json:"space"`
	Weather     string `json:"weather"`
	TimeOfDay   string `json:"timeOfDay"`
	Mood        string `json:"mood"`
	Composition string `json:"composition"`
}
