package i18n

var tables = map[Locale]map[string]string{
	English: {
		"heading":            "Only Positive Vibes ✨",
		"subheading":         "Spread joy and appreciation anonymously",
		"createButton":       "Create My Appreciation Link",
		"nameLabel":          "Your Name/Username",
		"namePlaceholder":    "Enter your name (e.g., hossain)",
		"generateButton":     "Generate Link",
		"copyButton":         "Copy Link & Share",
		"linkCopied":         "Link copied to clipboard! ✅",
		"writeMessage":       "Write something positive",
		"messagePlaceholder": "Share your appreciation...",
		"sendButton":         "Send",
		"successMessage":     "Your appreciation has been sent ✅",
		"dashboard":          "Dashboard",
		"receivedMessages":   "Messages for you ❤️",
		"shareButton":        "Share with Social Media",
		"exportButton":       "Export (Coming Soon 🚀)",
		"socialShare":        "I have received some positive messages ❤️\nYou can also write me:",
		"hashtags":           "#PositiveVibes #Appreciation",
		"back":               "← Back",
		"noMessages":         "No messages yet. Share your link to receive positive vibes!",
		"for":                "for",

		"sendAnother":        "Send Another Message",
		"sendFailed":         "Failed to send message. Please try again.",
		"messageRequired":    "Please write a message first.",
		"messageTooLong":     "Messages can be at most 500 characters.",
		"messageInvalid":     "This message contains characters that cannot be sent.",
		"loadFailed":         "Failed to load. Please try again.",
		"signInToContinue":   "Sign In to Continue",
		"signInPrompt":       "Sign in to create your personal appreciation link.",
		"signIn":             "Sign In",
		"signUp":             "Sign Up",
		"signOut":            "Sign Out",
		"email":              "Email",
		"password":           "Password",
		"username":           "Username",
		"createProfile":      "Choose your username",
		"invalidCredentials": "Invalid email or password. Please try again.",
		"emailTaken":         "An account with this email already exists. Please sign in instead.",
		"usernameTaken":      "This username is already taken. Please choose another one.",
		"invalidInput":       "Please check the highlighted fields.",
		"yourLink":           "Your personal link",
		"goToDashboard":      "Go to Dashboard",
		"instagramCopied":    "Text copied for Instagram! Paste it in your story or post.",
		"shareCopied":        "Copied to clipboard!",
		"shareFailed":        "Could not share. Please copy the link manually.",
		"adminDashboard":     "Admin Dashboard",
		"totalUsers":         "Total Users",
		"totalMessages":      "Total Messages",
		"activeUsers":        "Active Users",
		"topUsers":           "Top Users",
		"allUsers":           "All Users",
		"messageCount":       "Messages",
		"role":               "Role",
		"joined":             "Joined",
		"makeAdmin":          "Make Admin",
		"promoted":           "User promoted to admin.",
		"language":           "বাংলা",
	},
	Bengali: {
		"heading":            "শুধু ইতিবাচক ভাইব ✨",
		"subheading":         "গোপনীয়ভাবে আনন্দ এবং কৃতজ্ঞতা ছড়িয়ে দিন",
		"createButton":       "আমার কৃতজ্ঞতা লিংক তৈরি করুন",
		"nameLabel":          "আপনার নাম/ইউজারনেম",
		"namePlaceholder":    "আপনার নাম লিখুন (যেমন: হোসেন)",
		"generateButton":     "লিংক তৈরি করুন",
		"copyButton":         "লিংক কপি করুন ও শেয়ার করুন",
		"linkCopied":         "লিংক কপি হয়েছে! ✅",
		"writeMessage":       "কিছু ইতিবাচক লিখুন",
		"messagePlaceholder": "আপনার কৃতজ্ঞতা শেয়ার করুন...",
		"sendButton":         "পাঠান",
		"successMessage":     "আপনার কৃতজ্ঞতা পাঠানো হয়েছে ✅",
		"dashboard":          "ড্যাশবোর্ড",
		"receivedMessages":   "আপনার জন্য বার্তা ❤️",
		"shareButton":        "সামাজিক মাধ্যমে শেয়ার করুন",
		"exportButton":       "এক্সপোর্ট (শীঘ্রই আসছে 🚀)",
		"socialShare":        "আমি কিছু ইতিবাচক বার্তা পেয়েছি ❤️\nআপনিও আমাকে লিখতে পারেন:",
		"hashtags":           "#ইতিবাচকভাইব #কৃতজ্ঞতা",
		"back":               "← ফিরে যান",
		"noMessages":         "এখনো কোনো বার্তা নেই। ইতিবাচক ভাইব পেতে আপনার লিংক শেয়ার করুন!",
		"for":                "এর জন্য",

		"sendAnother":        "আরেকটি বার্তা পাঠান",
		"sendFailed":         "বার্তা পাঠানো যায়নি। আবার চেষ্টা করুন।",
		"messageRequired":    "প্রথমে একটি বার্তা লিখুন।",
		"messageTooLong":     "বার্তা সর্বোচ্চ ৫০০ অক্ষরের হতে পারে।",
		"messageInvalid":     "এই বার্তায় এমন অক্ষর আছে যা পাঠানো যায় না।",
		"loadFailed":         "লোড করা যায়নি। আবার চেষ্টা করুন।",
		"signInToContinue":   "চালিয়ে যেতে সাইন ইন করুন",
		"signInPrompt":       "আপনার ব্যক্তিগত কৃতজ্ঞতা লিংক তৈরি করতে সাইন ইন করুন।",
		"signIn":             "সাইন ইন",
		"signUp":             "সাইন আপ",
		"signOut":            "সাইন আউট",
		"email":              "ইমেইল",
		"password":           "পাসওয়ার্ড",
		"username":           "ইউজারনেম",
		"createProfile":      "আপনার ইউজারনেম বেছে নিন",
		"invalidCredentials": "ইমেইল বা পাসওয়ার্ড সঠিক নয়। আবার চেষ্টা করুন।",
		"emailTaken":         "এই ইমেইলে ইতিমধ্যে একটি অ্যাকাউন্ট আছে। অনুগ্রহ করে সাইন ইন করুন।",
		"usernameTaken":      "এই ইউজারনেমটি ইতিমধ্যে নেওয়া হয়েছে। অন্য একটি বেছে নিন।",
		"invalidInput":       "চিহ্নিত ঘরগুলো যাচাই করুন।",
		"yourLink":           "আপনার ব্যক্তিগত লিংক",
		"goToDashboard":      "ড্যাশবোর্ডে যান",
		"instagramCopied":    "ইনস্টাগ্রামের জন্য লেখা কপি হয়েছে! আপনার স্টোরি বা পোস্টে পেস্ট করুন।",
		"shareCopied":        "ক্লিপবোর্ডে কপি হয়েছে!",
		"shareFailed":        "শেয়ার করা যায়নি। লিংকটি নিজে কপি করুন।",
		"adminDashboard":     "অ্যাডমিন ড্যাশবোর্ড",
		"totalUsers":         "মোট ব্যবহারকারী",
		"totalMessages":      "মোট বার্তা",
		"activeUsers":        "সক্রিয় ব্যবহারকারী",
		"topUsers":           "শীর্ষ ব্যবহারকারী",
		"allUsers":           "সকল ব্যবহারকারী",
		"messageCount":       "বার্তা",
		"role":               "ভূমিকা",
		"joined":             "যোগদান",
		"makeAdmin":          "অ্যাডমিন করুন",
		"promoted":           "ব্যবহারকারীকে অ্যাডমিন করা হয়েছে।",
		"language":           "English",
	},
}
