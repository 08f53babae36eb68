package services

// The destination catalogue is static data: world regions mapped to country
// names, offered to the search widget and the wizard's destination picker.
// Free-text destinations outside this list are still accepted downstream.

type destinationRegion struct {
	Region    string
	Countries []string
}

var countriesByRegion = []destinationRegion{
	{
		Region: "Europe",
		Countries: []string{
			"Albania", "Andorra", "Austria", "Belarus", "Belgium",
			"Bosnia and Herzegovina", "Bulgaria", "Croatia", "Cyprus",
			"Czech Republic", "Denmark", "Estonia", "Finland", "France",
			"Germany", "Greece", "Hungary", "Iceland", "Ireland", "Italy",
			"Latvia", "Liechtenstein", "Lithuania", "Luxembourg", "Malta",
			"Moldova", "Monaco", "Montenegro", "Netherlands",
			"North Macedonia", "Norway", "Poland", "Portugal", "Romania",
			"San Marino", "Serbia", "Slovakia", "Slovenia", "Spain",
			"Sweden", "Switzerland", "Ukraine", "United Kingdom",
			"Vatican City",
		},
	},
	{
		Region: "Asia",
		Countries: []string{
			"Afghanistan", "Armenia", "Azerbaijan", "Bahrain", "Bangladesh",
			"Bhutan", "Brunei", "Cambodia", "China", "Georgia", "India",
			"Indonesia", "Iran", "Iraq", "Israel", "Japan", "Jordan",
			"Kazakhstan", "Kuwait", "Kyrgyzstan", "Laos", "Lebanon",
			"Malaysia", "Maldives", "Mongolia", "Myanmar", "Nepal",
			"North Korea", "Oman", "Pakistan", "Philippines", "Qatar",
			"Saudi Arabia", "Singapore", "South Korea", "Sri Lanka",
			"Syria", "Tajikistan", "Thailand", "Timor-Leste", "Turkey",
			"Turkmenistan", "United Arab Emirates", "Uzbekistan",
			"Vietnam", "Yemen",
		},
	},
	{
		Region: "Africa",
		Countries: []string{
			"Algeria", "Angola", "Benin", "Botswana", "Burkina Faso",
			"Burundi", "Cameroon", "Cape Verde", "Central African Republic",
			"Chad", "Comoros", "Congo", "Djibouti", "Egypt",
			"Equatorial Guinea", "Eritrea", "Eswatini", "Ethiopia",
			"Gabon", "Gambia", "Ghana", "Guinea", "Guinea-Bissau",
			"Ivory Coast", "Kenya", "Lesotho", "Liberia", "Libya",
			"Madagascar", "Malawi", "Mali", "Mauritania", "Mauritius",
			"Morocco", "Mozambique", "Namibia", "Niger", "Nigeria",
			"Rwanda", "São Tomé and Príncipe", "Senegal", "Seychelles",
			"Sierra Leone", "Somalia", "South Africa", "South Sudan",
			"Sudan", "Tanzania", "Togo", "Tunisia", "Uganda", "Zambia",
			"Zimbabwe",
		},
	},
	{
		Region:    "North America",
		Countries: []string{"Canada", "Mexico", "United States"},
	},
	{
		Region: "Caribbean",
		Countries: []string{
			"Antigua and Barbuda", "Bahamas", "Barbados", "Cuba",
			"Dominica", "Dominican Republic", "Grenada", "Haiti",
			"Jamaica", "Saint Kitts and Nevis", "Saint Lucia",
			"Saint Vincent and the Grenadines", "Trinidad and Tobago",
		},
	},
	{
		Region: "Central America",
		Countries: []string{
			"Belize", "Costa Rica", "El Salvador", "Guatemala",
			"Honduras", "Nicaragua", "Panama",
		},
	},
	{
		Region: "South America",
		Countries: []string{
			"Argentina", "Bolivia", "Brazil", "Chile", "Colombia",
			"Ecuador", "Guyana", "Paraguay", "Peru", "Suriname",
			"Uruguay", "Venezuela",
		},
	},
	{
		Region: "Oceania",
		Countries: []string{
			"Australia", "Fiji", "Kiribati", "Marshall Islands",
			"Micronesia", "Nauru", "New Zealand", "Palau",
			"Papua New Guinea", "Samoa",
		},
	},
}
