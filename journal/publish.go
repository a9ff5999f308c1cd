// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package journal

import (
	"encoding/binary"
	"sync"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
)

// topic of every published message
const publishTopic = "journal"

// Publisher - broadcast committed entries on a ZeroMQ PUB socket
//
// message parts: topic, kind, sequence (big endian uint64), payload
type Publisher struct {
	sync.Mutex
	log    *logger.L
	socket *zmq.Socket
}

// NewPublisher - bind a PUB socket to every endpoint
func NewPublisher(endpoints []string) (*Publisher, error) {
	log := logger.New("publish")

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}
	socket.SetLinger(0)

	for i, endpoint := range endpoints {
		err := socket.Bind(endpoint)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, endpoint, err)
			socket.Close()
			return nil, err
		}
		log.Infof("bind[%d]: %q", i, endpoint)
	}

	return &Publisher{
		log:    log,
		socket: socket,
	}, nil
}

// Publish - send entries, failures are logged and otherwise ignored
func (p *Publisher) Publish(entries []Entry) {
	p.Lock()
	defer p.Unlock()

	if nil == p.socket {
		return
	}
	for _, e := range entries {
		sequence := make([]byte, 8)
		binary.BigEndian.PutUint64(sequence, e.Sequence)
		_, err := p.socket.SendMessage(publishTopic, []byte{byte(e.Kind)}, sequence, e.Payload)
		if nil != err {
			p.log.Errorf("publish: %d  error: %s", e.Sequence, err)
			continue
		}
		p.log.Debugf("published: %d  kind: %s", e.Sequence, e.Kind)
	}
}

// Close - release the socket
func (p *Publisher) Close() error {
	p.Lock()
	defer p.Unlock()

	if nil == p.socket {
		return nil
	}
	err := p.socket.Close()
	p.socket = nil
	return err
}
