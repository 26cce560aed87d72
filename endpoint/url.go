package endpoint

import (
	"strings"

	"github.com/RobJacobson/wsdot-api-client/config"
)

// ferriesMarker identifies the WSF API family, which names its
// access-code query parameter differently from the Traffic APIs.
const ferriesMarker = "/ferries/"

const (
	keyParamFerries = "apiaccesscode"
	keyParamTraffic = "AccessCode"
)

// keyParamName returns the query-parameter name carrying the access
// credential for the given API path.
func keyParamName(apiPath string) string {
	if strings.Contains(apiPath, ferriesMarker) {
		return keyParamFerries
	}
	return keyParamTraffic
}

// BuildURL assembles base URL + API path + interpolated endpoint + the
// family's access-code query parameter. When the endpoint already
// carries query parameters the key is appended with '&' instead of
// '?'. No URL-encoding happens here; interpolated values are expected
// to be URL-safe already (see [Params]).
func BuildURL(cfg config.Config, apiPath, endpoint string) string {
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}

	return cfg.BaseURL + apiPath + endpoint + sep + keyParamName(apiPath) + "=" + cfg.APIKey
}
