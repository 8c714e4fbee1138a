// Package currency maps ISO 3166-1 alpha-2 country codes to ISO 4217 currency
// codes through a static table.
package currency

import "strings"

// countryCurrency is a simplified mapping; territories without a single
// national currency (e.g. Antarctica) map to an empty entry.
var countryCurrency = map[string]string{
	"AF": "AFN", // Afghanistan
	"AL": "ALL", // Albania
	"DZ": "DZD", // Algeria
	"AS": "USD", // American Samoa
	"AD": "EUR", // Andorra
	"AO": "AOA", // Angola
	"AI": "XCD", // Anguilla
	"AQ": "",    // Antarctica, no universal currency
	"AG": "XCD", // Antigua and Barbuda
	"AR": "ARS", // Argentina
	"AM": "AMD", // Armenia
	"AW": "AWG", // Aruba
	"AU": "AUD", // Australia
	"AT": "EUR", // Austria
	"AZ": "AZN", // Azerbaijan
	"BS": "BSD", // Bahamas
	"BH": "BHD", // Bahrain
	"BD": "BDT", // Bangladesh
	"BB": "BBD", // Barbados
	"BY": "BYN", // Belarus
	"BE": "EUR", // Belgium
	"BZ": "BZD", // Belize
	"BJ": "XOF", // Benin
	"BM": "BMD", // Bermuda
	"BT": "BTN", // Bhutan
	"BO": "BOB", // Bolivia
	"BA": "BAM", // Bosnia and Herzegovina
	"BW": "BWP", // Botswana
	"BR": "BRL", // Brazil
	"BN": "BND", // Brunei
	"BG": "BGN", // Bulgaria
	"BF": "XOF", // Burkina Faso
	"BI": "BIF", // Burundi
	"CV": "CVE", // Cape Verde
	"KH": "KHR", // Cambodia
	"CM": "XAF", // Cameroon
	"CA": "CAD", // Canada
	"KY": "KYD", // Cayman Islands
	"CF": "XAF", // Central African Republic
	"TD": "XAF", // Chad
	"CL": "CLP", // Chile
	"CN": "CNY", // China
	"CO": "COP", // Colombia
	"KM": "KMF", // Comoros
	"CG": "XAF", // Congo
	"CD": "CDF", // Democratic Republic of the Congo
	"CR": "CRC", // Costa Rica
	"CI": "XOF", // Ivory Coast
	"HR": "HRK", // Croatia
	"CU": "CUP", // Cuba
	"CY": "EUR", // Cyprus
	"CZ": "CZK", // Czech Republic
	"DK": "DKK", // Denmark
	"DJ": "DJF", // Djibouti
	"DM": "XCD", // Dominica
	"DO": "DOP", // Dominican Republic
	"EC": "USD", // Ecuador
	"EG": "EGP", // Egypt
	"SV": "USD", // El Salvador
	"GQ": "XAF", // Equatorial Guinea
	"ER": "ERN", // Eritrea
	"EE": "EUR", // Estonia
	"SZ": "SZL", // Eswatini
	"ET": "ETB", // Ethiopia
	"FJ": "FJD", // Fiji
	"FI": "EUR", // Finland
	"FR": "EUR", // France
	"GA": "XAF", // Gabon
	"GM": "GMD", // Gambia
	"GE": "GEL", // Georgia
	"DE": "EUR", // Germany
	"GH": "GHS", // Ghana
	"GR": "EUR", // Greece
	"GD": "XCD", // Grenada
	"GT": "GTQ", // Guatemala
	"GN": "GNF", // Guinea
	"GW": "XOF", // Guinea-Bissau
	"GY": "GYD", // Guyana
	"HT": "HTG", // Haiti
	"HN": "HNL", // Honduras
	"HK": "HKD", // Hong Kong
	"HU": "HUF", // Hungary
	"IS": "ISK", // Iceland
	"IN": "INR", // India
	"ID": "IDR", // Indonesia
	"IR": "IRR", // Iran
	"IQ": "IQD", // Iraq
	"IE": "EUR", // Ireland
	"IL": "ILS", // Israel
	"IT": "EUR", // Italy
	"JM": "JMD", // Jamaica
	"JP": "JPY", // Japan
	"JO": "JOD", // Jordan
	"KZ": "KZT", // Kazakhstan
	"KE": "KES", // Kenya
	"KI": "AUD", // Kiribati
	"KW": "KWD", // Kuwait
	"KG": "KGS", // Kyrgyzstan
	"LA": "LAK", // Laos
	"LV": "EUR", // Latvia
	"LB": "LBP", // Lebanon
	"LS": "LSL", // Lesotho
	"LR": "LRD", // Liberia
	"LY": "LYD", // Libya
	"LI": "CHF", // Liechtenstein
	"LT": "EUR", // Lithuania
	"LU": "EUR", // Luxembourg
	"MG": "MGA", // Madagascar
	"MW": "MWK", // Malawi
	"MY": "MYR", // Malaysia
	"MV": "MVR", // Maldives
	"ML": "XOF", // Mali
	"MT": "EUR", // Malta
	"MH": "USD", // Marshall Islands
	"MR": "MRU", // Mauritania
	"MU": "MUR", // Mauritius
	"MX": "MXN", // Mexico
	"FM": "USD", // Micronesia
	"MD": "MDL", // Moldova
	"MC": "EUR", // Monaco
	"MN": "MNT", // Mongolia
}

// FromCountry resolves a country code to its currency code. The lookup is
// case-insensitive. ok is false when the code is empty, unknown, or maps to
// an empty entry; callers fall back to a default or leave the field unset.
func FromCountry(code string) (string, bool) {
	if code == "" {
		return "", false
	}
	cur, found := countryCurrency[strings.ToUpper(code)]
	if !found || cur == "" {
		return "", false
	}
	return cur, true
}
