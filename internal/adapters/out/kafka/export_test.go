package kafka

// NewPublisherWithWriter lets tests replace the kafka writer.
func NewPublisherWithWriter(writer messageWriter, topic string) *Publisher {
	return &Publisher{writer: writer, topic: topic}
}
