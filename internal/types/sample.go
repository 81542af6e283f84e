package types

// SampleResume 返回内置的示例简历数据，未指定输入文件时使用
func SampleResume() *Resume {
	return &Resume{
		Name:    "高山 徹 (Toru Takayama)",
		Title:   "プロダクトマネージャー",
		Summary: "Next.jsとVercel AI SDKを用いた先進的なAIプロダクト開発を専門とする。ユーザー体験を最大化する設計と迅速なプロトタイピングを得意とする。",
		Contact: Contact{
			Email:  "toru.takayama@example.com",
			Phone:  "090-XXXX-XXXX",
			GitHub: "github.com/toru-t",
		},
		Experiences: []Experience{
			{
				Company:  "株式会社 AI-Drive",
				Duration: "2020年4月 - 現在",
				Role:     "リードエンジニア / PM",
				Achievements: []string{
					"Vercel AI SDKを利用した音声対話型サービスを開発・ローンチ。ユーザーアクティビティを50%向上。",
					"Next.js App Routerでのマイクロフロントエンド設計を導入し、開発効率を30%改善。",
					"ジュニアエンジニアの育成プログラムを策定し、チーム全体のスキル底上げに貢献。",
				},
			},
		},
		Skills: []Skill{
			{Name: "Next.js", Proficiency: 95},
			{Name: "React", Proficiency: 90},
			{Name: "Tailwind CSS", Proficiency: 85},
			{Name: "JavaScript", Proficiency: 80},
		},
		AIAssessment: AIAssessment{
			Title:   "🤖 AIが分析した強み：迅速なプロトタイピング能力",
			Summary: "高山氏は、最新の技術スタック（Next.js, Vercel AI SDK）への深い理解と実践力を持つ。特に、音声入力インターフェース設計に関する発言から、**ユーザーフレンドリーな体験設計**への強いコミットメントが確認できる。",
		},
	}
}
