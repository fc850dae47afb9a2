package test

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"plume/dal"
)

const localPubKey = "-----BEGIN PUBLIC KEY-----\nMIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAxOfKSoVvgObY5nih/3yd\nTlhF3w5etMIQZTvnsDLBQxRyvbEFfLoWOO2ug1tUq9XaIoagON+Fvrz75eFyHj87\nspeJ1dqgEGqtoAUiU0V1VZgn19iMdhVUWnTAtQobDMcs1Gs1tyHAOYSKTUadMXId\nYndLMQxHutXI9+ZWjLC322tbcYn9yuikJl58qQY8OtIG+Do4XJ5FuQKYMa11S3ff\ni+8I4Fp/3c6B4WviltC/FO41ntzgie/a9xNd9BkM9kattNvkMv0N3kkviG0KV1tq\nq+B1aiLFubaY27XTPvueJDzX39DeFl/+S/ak1rtkcoZXjMrqba4QvAFxFaFwjOrk\nhQIDAQAB\n-----END PUBLIC KEY-----"
const callerPubKey1 = "-----BEGIN RSA PUBLIC KEY-----\nMIIBCgKCAQEAvWcnbRP7l4XTHPhNIflGlfJNflcAeivqzAQdMwFu15EYYoXX9+ti\nGx75UpHDwT1wAJADCaAzzUrfeoB6RRuyPxrY437Iz7rd+jRet29rBf4+OQ/mxfLw\n6svgS56yPM+r/Rp6vwyGHjEI6u/Jz6Xa1LMBHB1XCnuzqstLj16UaxvBWWBPi+6A\nEPlP6HYIknrNjvoA3TPb64dufvXojQgoMbcnCf3h/SJ2JKvDLVAUsPvuXkvf9y+a\n8TcT6T6gJdsXszZ3rXI4JnmyAwOrmPvMcC3u5bS3jh+srEbrkXq0uOQ55lpwoDve\nkDIjk4OIjESuev6WFyv9IMhSWQrdBPxQwwIDAQAB\n-----END RSA PUBLIC KEY-----\n"

var muId sync.Mutex
var id int64 = time.Now().UnixNano()

func getNextId() uint64 {
	var res int64
	muId.Lock()
	res = id
	id += 1
	muId.Unlock()
	return uint64(res)
}

func makeCallerActor(host, name, pubKeyPem string) *dal.RemoteActor {
	return &dal.RemoteActor{
		UserUrl:     fmt.Sprintf("https://%s/users/%s", host, name),
		Handle:      name,
		Host:        host,
		Name:        name,
		Inbox:       fmt.Sprintf("https://%s/users/%s/inbox", host, name),
		SharedInbox: fmt.Sprintf("https://%s/inbox", host),
		PubKey:      pubKeyPem,
		FetchedAt:   time.Now().UTC(),
	}
}

func makeCreateNote(host, name, content string, to, cc []string, inReplyTo *string, tags string) []byte {
	bytes, err := fs.ReadFile("data/create-note.json")
	if err != nil {
		panic(err)
	}
	json := string(bytes)

	actor := fmt.Sprintf("https://%s/users/%s", host, name)
	largeId := fmt.Sprintf("%d", getNextId())

	json = strings.ReplaceAll(json, "{{activity-id}}", fmt.Sprintf("%s/statuses/%s", actor, largeId))
	json = strings.ReplaceAll(json, "{{actor}}", actor)
	json = strings.ReplaceAll(json, "{{published}}", time.Now().UTC().Format(time.RFC3339))
	json = strings.ReplaceAll(json, "{{content}}", content)
	json = strings.ReplaceAll(json, "{{tags}}", tags)
	if inReplyTo == nil {
		json = strings.ReplaceAll(json, "{{inReplyTo}}", "null")
	} else {
		json = strings.ReplaceAll(json, "{{inReplyTo}}", "\""+*inReplyTo+"\"")
	}

	listToStr := func(list []string) string {
		if len(list) == 1 {
			return `"` + list[0] + `"`
		}
		res := "["
		for ix, s := range list {
			if ix > 0 {
				res += ", "
			}
			res += `"` + s + `"`
		}
		res += "]"
		return res
	}

	json = strings.ReplaceAll(json, "{{to}}", listToStr(to))
	json = strings.ReplaceAll(json, "{{cc}}", listToStr(cc))
	return []byte(json)
}
