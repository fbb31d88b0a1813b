package telegram

const welcomeText = `🤖 **Welcome to FlashBot!**

I can:
• 💬 Answer your questions
• 🖼️ Analyze images
• 📄 Work with files (PDF, TXT, JSON and more)
• 🧠 Keep the conversation context

**Commands:**
/start - Show this message
/clear - Clear the conversation history
/help - Help and examples
/status - Bot status

Just send me text, an image or a file! 🚀`

const helpText = `📚 **How to use the bot:**

**💬 Text messages:**
• Ask any question
• Keep the dialogue going, the bot remembers context
• Ask for code, poems, summaries

**🖼️ Images:**
• Send a photo with a question about it
• Ask what is in the picture
• Extract text from a screenshot

**📄 Files:**
• TXT, JSON, CSV, HTML - content analysis
• PDF - size is reported, text is not extracted

**⚙️ More commands:**
/clear - Clear the history
/status - Check the bot`

const (
	msgCleared         = "🧹 Conversation history cleared! We can start over."
	msgClearedCallback = "🧹 History cleared!"
	msgClearedEdit     = "Conversation history cleared! You can ask a new question."

	msgVoiceUnsupported = "🎤 Voice messages are not supported yet.\nSend text, an image or a document."

	msgFileTooBig       = "❌ The file is too large. The maximum is 20MB."
	msgUnknownFileType  = "❌ Could not determine the file type."
	msgUnsupportedType  = "❌ This file type is not supported.\n\n**Supported formats:**\n%s"
	msgDownloadFailed   = "❌ Failed to download the file: %v"
	msgHandlerFailed    = "❌ Something went wrong while processing your message. Please try again."
	defaultPhotoPrompt  = "What is in this picture? Describe it in detail."
	defaultFilePromptFn = "Analyze the contents of file %s"

	statusProbeText = "Answer briefly: are you working?"
)
