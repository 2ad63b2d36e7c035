package catalog

// DefaultCameraKeyword 未知或缺省取景
const DefaultCameraKeyword = "medium shot"

// CameraKeyword 返回取景偏好对应的镜头描述
func CameraKeyword(composition string) string {
	switch composition {
	case "클로즈업":
		return "close-up shot focusing on the face and emotion"
	case "바스트샷":
		return "bust shot from the chest up"
	case "미디엄샷":
		return DefaultCameraKeyword
	case "풀샷":
		return "full body shot showing the entire figure"
	case "와이드샷":
		return "wide establishing shot with the character small in a vast environment"
	case "로우앵글":
		return "low angle shot looking up at the character"
	case "하이앵글":
		return "high angle shot looking down at the character"
	case "오버숄더":
		return "over-the-shoulder shot"
	default:
		return DefaultCameraKeyword
	}
}
