package notify

type quote struct {
	Title   string
	Message string
}

// motivationalQuotes is the catalog the daily notification draws from.
var motivationalQuotes = []quote{
	{
		Title:   "💪 Keep Pushing Forward!",
		Message: "Success is the sum of small efforts repeated day in and day out. You're doing great!",
	},
	{
		Title:   "🌟 Believe in Yourself!",
		Message: "The only limit to your impact is your imagination and commitment. Keep learning!",
	},
	{
		Title:   "🚀 You're Making Progress!",
		Message: "Every expert was once a beginner. Every pro was once an amateur. Keep going!",
	},
	{
		Title:   "🎯 Stay Focused!",
		Message: "Success doesn't come from what you do occasionally, it comes from what you do consistently.",
	},
	{
		Title:   "✨ You've Got This!",
		Message: "The beautiful thing about learning is that no one can take it away from you.",
	},
	{
		Title:   "🔥 Keep the Fire Burning!",
		Message: "Education is the passport to the future. Tomorrow belongs to those who prepare for it today.",
	},
	{
		Title:   "🌈 Embrace the Journey!",
		Message: "Learning is not attained by chance, it must be sought for with ardor and diligence.",
	},
	{
		Title:   "💡 Knowledge is Power!",
		Message: "The more that you read, the more things you will know. The more that you learn, the more places you'll go!",
	},
	{
		Title:   "🏆 Champion Mindset!",
		Message: "Don't watch the clock; do what it does. Keep going. Your hard work will pay off!",
	},
	{
		Title:   "⭐ Shine Bright!",
		Message: "The expert in anything was once a beginner. Your dedication today shapes your success tomorrow!",
	},
	{
		Title:   "🎓 Smart Choice!",
		Message: "Investing in knowledge pays the best interest. Every minute you study is an investment in yourself!",
	},
	{
		Title:   "🌱 Growth Mindset!",
		Message: "Challenges are what make life interesting. Overcoming them is what makes life meaningful!",
	},
	{
		Title:   "💎 You're Valuable!",
		Message: "Your potential is endless. Keep believing, keep learning, keep growing!",
	},
	{
		Title:   "🎨 Create Your Future!",
		Message: "The best way to predict the future is to create it through learning and hard work!",
	},
	{
		Title:   "🌟 Daily Reminder!",
		Message: "Small daily improvements over time lead to stunning results. Keep up the great work!",
	},
}
