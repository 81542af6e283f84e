package constants

const (
	// Application-level constants
	ServiceName    = "resume-preview"
	ServiceVersion = "1.0.0"

	// 章节标题，按页面中出现的顺序
	SectionAIAssessment   = "AI Assessment"
	SectionWorkExperience = "Work Experience"
	SectionSkills         = "Technical Skills"

	// 输出格式
	FormatHTML = "html"
	FormatText = "text"

	// 默认主题色 (Tailwind utility classes)
	DefaultPrimaryClass     = "text-blue-600"
	DefaultPrimaryBgClass   = "bg-blue-600"
	DefaultSecondaryBgClass = "bg-gray-50"
	DefaultBorderClass      = "border-gray-200"

	DefaultTailwindScriptURL = "https://cdn.tailwindcss.com"
	DefaultDocumentLang      = "ja"
	DefaultTextBarWidth      = 20
)
