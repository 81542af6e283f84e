package types

// Contact 联系方式
type Contact struct {
	Email  string `json:"email" yaml:"email" toml:"email"`
	Phone  string `json:"phone" yaml:"phone" toml:"phone"`
	GitHub string `json:"github" yaml:"github" toml:"github"` // 个人主页/GitHub链接
}

// Experience 一段工作经历
type Experience struct {
	Company      string   `json:"company" yaml:"company" toml:"company"`
	Duration     string   `json:"duration" yaml:"duration" toml:"duration"` // 例如 "2020年4月 - 現在"，按原样展示
	Role         string   `json:"role" yaml:"role" toml:"role"`
	Achievements []string `json:"achievements" yaml:"achievements" toml:"achievements"`
}

// Skill 技能及熟练度
type Skill struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	// Proficiency 熟练度百分比 (0-100)，直接作为进度条宽度使用，不做校验和截断
	Proficiency int `json:"proficiency" yaml:"proficiency" toml:"proficiency"`
}

// AIAssessment AI分析结论
type AIAssessment struct {
	Title   string `json:"title" yaml:"title" toml:"title"`
	Summary string `json:"summary" yaml:"summary" toml:"summary"`
}

// Resume 简历预览所需的完整数据，渲染过程中只读
type Resume struct {
	Name         string       `json:"name" yaml:"name" toml:"name"`
	Title        string       `json:"title" yaml:"title" toml:"title"`
	Summary      string       `json:"summary" yaml:"summary" toml:"summary"`
	Contact      Contact      `json:"contact" yaml:"contact" toml:"contact"`
	Experiences  []Experience `json:"experiences" yaml:"experiences" toml:"experiences"`
	Skills       []Skill      `json:"skills" yaml:"skills" toml:"skills"`
	AIAssessment AIAssessment `json:"aiAssessment" yaml:"aiAssessment" toml:"aiAssessment"`
}

// AchievementCount 返回所有工作经历中成果条目的总数
func (r *Resume) AchievementCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, exp := range r.Experiences {
		n += len(exp.Achievements)
	}
	return n
}

// OutOfRangeSkills 返回熟练度不在 [0,100] 区间内的技能。
// 仅用于提示，渲染时仍按原值使用。
func (r *Resume) OutOfRangeSkills() []Skill {
	if r == nil {
		return nil
	}
	var out []Skill
	for _, s := range r.Skills {
		if s.Proficiency < 0 || s.Proficiency > 100 {
			out = append(out, s)
		}
	}
	return out
}
