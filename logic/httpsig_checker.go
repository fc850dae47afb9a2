package logic

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-fed/httpsig"
	"plume/dal"
	"plume/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_httpsig_checker.go -package mocks plume/logic IHttpSigChecker

type IHttpSigChecker interface {
	Check(actorUrl string, r *http.Request, bodyBytes []byte) (*dal.RemoteActor, string, error)
}

// Requests whose Date header is further than this from our clock are
// rejected; it bounds the replay window of a captured signature.
const maxDateSkew = 30 * time.Minute

type httpSigChecker struct {
	logger   shared.ILogger
	resolver IActorResolver
	reKeyId  *regexp.Regexp
}

func NewHttpSigChecker(logger shared.ILogger, resolver IActorResolver) IHttpSigChecker {
	reKeyId := regexp.MustCompile("keyId=['\"]([^'\"]+)['\"]")
	return &httpSigChecker{logger, resolver, reKeyId}
}

// Check verifies the request's HTTP signature against the actor's public
// key, resolving the actor if we don't hold the key yet. The signature alone
// only covers header values, so the body is bound in separately: the Digest
// header must hash the actual bytes, and the signed Date must be close to
// our own clock. Fails closed: any malformed header, skewed date, digest
// mismatch or bad key yields a problem string, never a panic. If
// verification fails with a cached key, the actor is re-fetched once in case
// the key has rotated.
func (chk *httpSigChecker) Check(actorUrl string, r *http.Request, bodyBytes []byte) (*dal.RemoteActor, string, error) {

	var err error

	var sigHeader = r.Header.Get("Signature")
	groups := chk.reKeyId.FindStringSubmatch(sigHeader)
	if groups == nil {
		return nil, "Missing or invalid 'Signature' header", nil
	}
	keyId := groups[1]

	if !strings.HasPrefix(keyId, actorUrl) {
		return nil, fmt.Sprintf("Actor is not prefix of keyId; actor: %s, keyId: %s", actorUrl, keyId), nil
	}

	if problem := checkDate(r.Header.Get("Date")); problem != "" {
		return nil, problem, nil
	}
	if problem := checkDigest(r.Header.Get("Digest"), bodyBytes); problem != "" {
		return nil, problem, nil
	}

	var actor *dal.RemoteActor
	if actor, err = chk.resolver.ResolveUri(actorUrl, false); err != nil {
		return nil, fmt.Sprintf("Failed to resolve actor: %s: %v", actorUrl, err), nil
	}

	verifier, err := httpsig.NewVerifier(r)
	if err != nil {
		chk.logger.Errorf("Failed to create signature verifier: %v", err)
		return nil, "", err
	}

	problem := chk.verifyWithKey(verifier, actor.PubKey)
	if problem == "" {
		return actor, "", nil
	}

	// The cached key may be stale; one fresh fetch, one more try.
	if actor, err = chk.resolver.ResolveUri(actorUrl, true); err != nil {
		return nil, problem, nil
	}
	if problem = chk.verifyWithKey(verifier, actor.PubKey); problem != "" {
		return nil, problem, nil
	}
	return actor, "", nil
}

func checkDate(dateStr string) string {
	if dateStr == "" {
		return "Missing 'Date' header"
	}
	date, err := http.ParseTime(dateStr)
	if err != nil {
		return fmt.Sprintf("Invalid 'Date' header: %s", dateStr)
	}
	skew := time.Since(date)
	if skew < 0 {
		skew = -skew
	}
	if skew > maxDateSkew {
		return fmt.Sprintf("Request date too far from ours: %s", dateStr)
	}
	return ""
}

// checkDigest ties the signature to the body: the Digest header is among the
// signed values, so when its hash matches the bytes we received, the
// signature vouches for them too.
func checkDigest(digestHeader string, bodyBytes []byte) string {
	if digestHeader == "" {
		return "Missing 'Digest' header"
	}
	eqIx := strings.IndexByte(digestHeader, '=')
	if eqIx == -1 || !strings.EqualFold(digestHeader[:eqIx], "SHA-256") {
		return fmt.Sprintf("Unsupported digest algorithm in header: %s", digestHeader)
	}
	hash := sha256.Sum256(bodyBytes)
	expected := base64.StdEncoding.EncodeToString(hash[:])
	if digestHeader[eqIx+1:] != expected {
		return "Digest header does not match request body"
	}
	return ""
}

func (chk *httpSigChecker) verifyWithKey(verifier httpsig.Verifier, pubKeyPem string) string {

	block, _ := pem.Decode([]byte(pubKeyPem))
	if block == nil {
		return "Actor's public key is not valid PEM"
	}

	var pubKey interface{}
	var err error
	if pubKey, err = x509.ParsePKIXPublicKey(block.Bytes); err != nil {
		if pubKey, err = x509.ParsePKCS1PublicKey(block.Bytes); err != nil {
			return fmt.Sprintf("Failed to parse sender's public key: %v", err)
		}
	}

	if err = verifier.Verify(pubKey, httpsig.RSA_SHA256); err != nil {
		return fmt.Sprintf("Incorrect signature: %v", err)
	}
	return ""
}
