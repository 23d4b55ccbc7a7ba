package ethutil

import "strings"

const ipfsScheme = "ipfs://"

// ResolveURI rewrites ipfs:// URIs to an HTTP gateway URL. Other URIs are returned as is.
func ResolveURI(uri string, gateways []string) string {
	if !strings.HasPrefix(uri, ipfsScheme) || len(gateways) == 0 {
		return uri
	}

	path := strings.TrimPrefix(strings.TrimPrefix(uri, ipfsScheme), "ipfs/")
	return strings.TrimSuffix(gateways[0], "/") + "/ipfs/" + path
}
