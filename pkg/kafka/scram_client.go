package kafka

import (
	"crypto/sha256"
	"crypto/sha512"

	"github.com/IBM/sarama"
	"github.com/xdg/scram"
)

var (
	SHA256 scram.HashGeneratorFcn = sha256.New
	SHA512 scram.HashGeneratorFcn = sha512.New
)

// SCRAMClient implements sarama.SCRAMClient for SASL/SCRAM authentication
type SCRAMClient struct {
	*scram.Client
	*scram.ClientConversation
	scram.HashGeneratorFcn
}

// NewSHA256Client is a sarama SCRAMClientGeneratorFunc for SCRAM-SHA-256
func NewSHA256Client() sarama.SCRAMClient {
	return &SCRAMClient{HashGeneratorFcn: SHA256}
}

// NewSHA512Client is a sarama SCRAMClientGeneratorFunc for SCRAM-SHA-512
func NewSHA512Client() sarama.SCRAMClient {
	return &SCRAMClient{HashGeneratorFcn: SHA512}
}

// Begin prepares the client for the SCRAM exchange
func (x *SCRAMClient) Begin(userName, password, authzID string) (err error) {
	x.Client, err = x.HashGeneratorFcn.NewClient(userName, password, authzID)
	if err != nil {
		return err
	}
	x.ClientConversation = x.Client.NewConversation()
	return nil
}

// Step steps client through the SCRAM exchange
func (x *SCRAMClient) Step(challenge string) (response string, err error) {
	response, err = x.ClientConversation.Step(challenge)
	return
}

// Done should return true when the SCRAM conversation
// is over.
func (x *SCRAMClient) Done() bool {
	return x.ClientConversation.Done()
}
