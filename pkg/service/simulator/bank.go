package simulator

// responseBanks holds the fixed simulated response templates per category
var responseBanks = map[Category][]string{
	CategoryEmail: {
		"Here's a concise summary of the email:\n\nKey points:\n- Main topic discussed\n- Action items identified\n- Important deadlines mentioned\n\nRecommended next steps: Review and respond to priority items.",
		"Email Summary:\n\nSubject: Project Update\nPriority: Medium\n\nThe email discusses project milestones and upcoming deliverables. Three main action items require attention by next week.",
	},
	CategorySocial: {
		"✨ Perfect caption for your post:\n\n\"Embracing new challenges and opportunities. Every step forward is a step toward growth. #Motivation #Growth #Success\"\n\nAlternate option: \"Making things happen, one day at a time. 🚀\"",
		"📱 Social Media Caption:\n\n\"Innovation meets execution. Here's what we're building next... Stay tuned! 💡 #TechLife #Innovation\"\n\nBest posting time: 2-4 PM for maximum engagement.",
	},
	CategoryResearch: {
		"Research Findings:\n\n📊 Topic: [Analyzed Topic]\n\nKey Insights:\n1. Primary finding with supporting evidence\n2. Secondary observation with data points\n3. Emerging trends and patterns\n\nSources: Analyzed multiple credible sources\nConfidence: High",
		"Research Summary:\n\nMain Question: [User Query]\n\nFindings:\n- Statistical data shows significant correlation\n- Expert opinions align with hypothesis\n- Recent studies support conclusion\n\nRecommendation: Further investigation recommended in specific areas.",
	},
	CategoryDefault: {
		"Task completed successfully. Here are the results based on your request:\n\n✓ Analysis complete\n✓ Key points identified\n✓ Recommendations generated\n\nPlease review and let me know if you need any adjustments.",
		"Response generated successfully:\n\nI've processed your request and here's what I found:\n\n- Primary insight from analysis\n- Supporting details and context\n- Actionable next steps\n\nFeel free to refine the prompt for more specific results.",
	},
}
