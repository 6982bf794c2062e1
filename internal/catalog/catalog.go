package catalog

import "healthme-backend/internal/model"

// questions is the reference survey: six Likert items, one per dimension.
// The scoring engine averages within a dimension, so adding more items to a
// dimension needs no code change here or there.
var questions = []model.Question{
	{ID: 1, Text: "ฉันสามารถอ่านและเข้าใจคำศัพท์ทางการแพทย์พื้นฐานได้", Dimension: model.Traditional},
	{ID: 2, Text: "ฉันรู้วิธีค้นหาข้อมูลสุขภาพที่เชื่อถือได้จากอินเทอร์เน็ต", Dimension: model.Information},
	{ID: 3, Text: "ฉันสามารถแยกแยะระหว่างข่าวสุขภาพจริงและข่าวปลอมได้", Dimension: model.Media},
	{ID: 4, Text: "ฉันเข้าใจวิธีการดูแลสุขภาพเบื้องต้นเมื่อเจ็บป่วย", Dimension: model.Health},
	{ID: 5, Text: "ฉันใช้แอปพลิเคชันหรือเว็บไซต์เพื่อบันทึกข้อมูลสุขภาพได้", Dimension: model.Computer},
	{ID: 6, Text: "ฉันเข้าใจเหตุผลทางวิทยาศาสตร์เบื้องต้นเกี่ยวกับโรคระบาด", Dimension: model.Science},
}

// Questions returns the ordered survey catalog. The returned slice is a copy;
// the catalog itself is fixed at process start.
func Questions() []model.Question {
	out := make([]model.Question, len(questions))
	copy(out, questions)
	return out
}

// DimensionLabels maps each dimension to its Thai display label.
var DimensionLabels = map[model.Dimension]string{
	model.Traditional: "การรู้หนังสือทั่วไป",
	model.Information: "การรู้สารสนเทศ",
	model.Media:       "การรู้เท่าทันสื่อ",
	model.Health:      "การรู้สุขภาพ",
	model.Computer:    "การรู้คอมพิวเตอร์",
	model.Science:     "การรู้วิทยาศาสตร์",
}

// DimensionAdvice holds per-dimension improvement advice shown to students
// with a weak score in that dimension.
var DimensionAdvice = map[model.Dimension]string{
	model.Traditional: "ลองฝึกอ่านฉลากยาหรือบทความสุขภาพสั้นๆ วันละนิด จะช่วยให้เข้าใจศัพท์ยากๆ ได้ดีขึ้นนะ",
	model.Information: "ก่อนเชื่อข้อมูลในเน็ต ลองเช็คดูว่าใครเป็นคนเขียน และมีวันที่ระบุชัดเจนไหม",
	model.Media:       "อย่าเพิ่งรีบแชร์! ลองตรวจสอบกับข่าวหลายๆ ช่องทางก่อนนะว่าจริงหรือมั่ว",
	model.Health:      "สังเกตอาการตัวเองบ่อยๆ และลองจดบันทึกดูว่าทำอะไรแล้วสุขภาพดีขึ้นบ้าง",
	model.Computer:    "ฝึกใช้แอปฯ สุขภาพหรือเว็บหมอพร้อม จะช่วยให้เข้าถึงข้อมูลได้ไวขึ้นนะ",
	model.Science:     "ลองตั้งคำถามว่า \"ทำไม\" กับเรื่องสุขภาพดู เช่น ทำไมเราต้องล้างมือ? จะช่วยให้เข้าใจลึกซึ้งขึ้น",
}

// DimensionFeedback holds the encouragement line shown right after a student
// answers a question in that dimension.
var DimensionFeedback = map[model.Dimension]string{
	model.Traditional: "การอ่านและเข้าใจศัพท์แพทย์เป็นพื้นฐานสำคัญ เยี่ยมมากที่หนูพยายามเรียนรู้!",
	model.Information: "การรู้แหล่งข้อมูลที่ถูกต้องช่วยให้เราปลอดภัยจากความเชื่อผิดๆ นะ",
	model.Media:       "ในยุคนี้ข่าวปลอมเยอะมาก การคิดก่อนเชื่อคือเกราะป้องกันที่ดีที่สุด!",
	model.Health:      "ความเข้าใจเรื่องสุขภาพจะช่วยให้หนูดูแลตัวเองและคนที่รักได้ดียิ่งขึ้น",
	model.Computer:    "เทคโนโลยีทำให้เราเข้าถึงหมอและข้อมูลได้ไวขึ้น ฝึกใช้บ่อยๆ เก่งแน่นอน!",
	model.Science:     "วิทยาศาสตร์ช่วยอธิบายเหตุผลของสิ่งต่างๆ ได้ ความสงสัยคือจุดเริ่มต้นของการเรียนรู้!",
}

// LevelConfig is the motivational framing attached to a proficiency level:
// badge name, description, concrete recommendations and an encouragement line.
type LevelConfig struct {
	Title           string                 `json:"title"`
	Level           model.ProficiencyLevel `json:"level"`
	Icon            string                 `json:"icon"`
	Badge           string                 `json:"badge"`
	Description     string                 `json:"description"`
	Recommendations []string               `json:"recommendations"`
	Encouragement   string                 `json:"encouragement"`
}

// LevelConfigs maps each proficiency level to its framing. Risk levels have
// no table of their own: both tiers derive from the same continuous score at
// classification time, so a static risk-to-config bridge would drift out of
// sync under threshold edits.
var LevelConfigs = map[model.ProficiencyLevel]LevelConfig{
	model.LevelBeginner: {
		Title:       "Beginner",
		Level:       model.LevelBeginner,
		Icon:        "snail",
		Badge:       "น้องหอยทากจอมขยัน",
		Description: "หนูเพิ่งเริ่มต้นเดินทางในโลกสุขภาพดิจิทัล ค่อยๆ ก้าวไปทีละนิดเหมือนน้องหอยทากนะ ถึงจะช้าแต่ถ้าไม่หยุดเดินก็ถึงเส้นชัยแน่นอน!",
		Recommendations: []string{
			"ถามคุณครูหรือผู้ปกครองเมื่อเจอข้อมูลสุขภาพที่ไม่เข้าใจ",
			"ระวังโฆษณาที่ดูเกินจริง หรือให้รางวัลแปลกๆ",
			"เริ่มจากอ่านฉลากขนมหรือนมที่ดื่มทุกวัน",
		},
		Encouragement: "ก้าวแรกสำคัญที่สุด! ค่อยๆ เรียนรู้ไปนะ",
	},
	model.LevelBasic: {
		Title:       "Basic",
		Level:       model.LevelBasic,
		Icon:        "rabbit",
		Badge:       "กระต่ายน้อยนักสำรวจ",
		Description: "หนูมีความรวดเร็วในการเรียนรู้เหมือนกระต่ายน้อย! แต่บางครั้งข้อมูลในโลกออนไลน์ก็ซับซ้อน ต้องระวังหลุมพรางข่าวปลอมด้วยนะ",
		Recommendations: []string{
			"ฝึกสังเกต \"วันที่\" ของบทความว่าเก่าไปไหม",
			"ลองเปรียบเทียบข้อมูลจาก 2 เว็บไซต์ว่าตรงกันไหม",
			"ใช้แอปพลิเคชันสุขภาพง่ายๆ ในการบันทึกข้อมูล",
		},
		Encouragement: "กระโดดไปข้างหน้า! เก็บเกี่ยวความรู้ใหม่ๆ เสมอนะ",
	},
	model.LevelIntermediate: {
		Title:       "Intermediate",
		Level:       model.LevelIntermediate,
		Icon:        "bird",
		Badge:       "นกน้อยเจ้าเวหา",
		Description: "บินสูงแล้ว! หนูเริ่มมองเห็นภาพรวมของสุขภาพได้กว้างไกลขึ้น แยกแยะข่าวจริง/ปลอมได้เก่ง พัฒนาทักษะการบิน (การวิเคราะห์) อีกนิดจะเยี่ยมเลย",
		Recommendations: []string{
			"ตรวจสอบแหล่งที่มาของข้อมูล (เช่น .gov, .org เชื่อถือได้มากกว่า)",
			"ลองอธิบายเรื่องสุขภาพที่อ่านมาให้เพื่อนฟัง",
			"ระวังเรื่องความปลอดภัยข้อมูลส่วนตัวบนโลกออนไลน์",
		},
		Encouragement: "บินให้สูงขึ้นไปอีก! ท้องฟ้าแห่งความรู้ไม่มีที่สิ้นสุด",
	},
	model.LevelProficient: {
		Title:       "Proficient",
		Level:       model.LevelProficient,
		Icon:        "rocket",
		Badge:       "จรวดพุ่งทะยาน",
		Description: "ว้าว! ความรู้หนูพุ่งแรงเหมือนจรวด จัดการข้อมูลสุขภาพได้รวดเร็วและแม่นยำ เป็นที่พึ่งพาให้คนรอบข้างได้เลย",
		Recommendations: []string{
			"ช่วยตรวจสอบข่าวปลอม (Fake News) ให้คนรอบข้าง",
			"ศึกษาเรื่องศัพท์เฉพาะทางวิทยาศาสตร์เพิ่มเติม",
			"นำความรู้ไปปรับใช้ดูแลสุขภาพคนในครอบครัว",
		},
		Encouragement: "พุ่งทะยานสู่ดวงดาว! หนูทำได้ยอดเยี่ยมมาก",
	},
	model.LevelAdvanced: {
		Title:       "Advanced",
		Level:       model.LevelAdvanced,
		Icon:        "sparkles",
		Badge:       "ซูเปอร์สตาร์สุขภาพ",
		Description: "เปล่งประกายสุดๆ! หนูคือดาวเด่นที่มีทักษะรอบด้าน วิเคราะห์ลึกซึ้งและแก้ปัญหาได้จริง ใครๆ ก็อยากขอคำแนะนำจากหนู",
		Recommendations: []string{
			"เป็นผู้นำกิจกรรมสุขภาพในโรงเรียน",
			"สร้างคอนเทนต์หรือโปสเตอร์ให้ความรู้เพื่อนๆ",
			"ติดตามงานวิจัยหรือนวัตกรรมสุขภาพใหม่ๆ เสมอ",
		},
		Encouragement: "หนูคือแบบอย่างที่ดีที่สุด! รักษาความสดใสนี้ไว้นะ",
	},
}
