package chat

// Sender identifies who wrote a transcript line.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one line of the widget transcript.
type Message struct {
	From Sender `json:"from"`
	Text string `json:"text"`
}

// Request is the body of POST /api/chatbot.
type Request struct {
	Question string `json:"question"`
}

// Response is the body returned by POST /api/chatbot.
type Response struct {
	Answer string `json:"answer,omitempty"`
	Error  string `json:"error,omitempty"`
}
