package save

import (
	"encoding/base64"
	"sync"
)

// referenceBestiaryBase64 is a byte-exact dump of a bestiary section with
// every enemy discovered (the "Dead God" snapshot). It is the default
// reference for EnsureBestiaryEncounterMinimum and must not be regenerated:
// its keys and payloads are format facts.
const referenceBestiaryBase64 = "BAAAAIwDAAAAAKAACAAAAAABoAADAAAAAAKgAAQAAAAAALAABQAAAAABsAADAAAAAADAAAYAAAAA" +
		"AOAABQAAAAAB4AABAAAAAADwAAQAAAAAAfAAAQAAAAABAAECAAAAAAIAAQIAAAAAACABEAAAAAAA" +
		"MAEGAAAAAAEwAQIAAAAAAEABBwAAAAAAUAEBAAAAAABwAQQAAAAAAXABAwAAAAACcAEFAAAAAACA" +
		"AQUAAAAAAYABAQAAAAACgAECAAAAAACQAQgAAAAAApABAwAAAAADkAEBAAAAAACgAQMAAAAAAaAB" +
		"BwAAAAAAsAECAAAAAADAAQIAAAAAANABAwAAAAAB0AEHAAAAAAPQAQEAAAAAAOABAQAAAAAAAAIC" +
		"AAAAAAAgAgQAAAAAADACAgAAAAACMAIDAAAAAABAAgEAAAAAAWACAgAAAAAAcAIBAAAAAAFwAgEA" +
		"AAAAAJACAQAAAAACkAIBAAAAAACgAgIAAAAAAaACAQAAAAAAsAIDAAAAAAGwAgEAAAAAAcACAQAA" +
		"AAAA0AICAAAAAADgAgEAAAAAAeACAgAAAAAA8AIBAAAAAAHwAgIAAAAAAAADAQAAAAABAAMEAAAA" +
		"AAAQAwMAAAAAARADAQAAAAAAIAMCAAAAAAEgAwIAAAAAADADAQAAAAAVMAMDAAAAAB8wAwMAAAAA" +
		"AEADAgAAAAABQAMBAAAAAABQAwEAAAAAAGADCgAAAAABcAMCAAAAAAJwAwIAAAAAAIADAQAAAAAA" +
		"oAMBAAAAAAGgAwMAAAAAAMADAgAAAAAA0AMGAAAAAALQAwIAAAAAA9ADAQAAAAAA4AMBAAAAAALg" +
		"AwEAAAAAAPADBQAAAAAAAAQCAAAAAAAQBAEAAAAAARAEAQAAAAAAMAQBAAAAAAFABAIAAAAAAFAE" +
		"AwAAAAAAcAQBAAAAAADQBAEAAAAAAOAEAQAAAAAB4AQFAAAAAArwBAIAAAAAAAAFAgAAAAAAEAUL" +
		"AAAAAAEQBQIAAAAAAEAFAgAAAAAAUAUYAAAAAABwBQIAAAAAAIAFAQAAAAABwAUBAAAAAADQBQEA" +
		"AAAAAOAFAgAAAAAAAAYDAAAAAAAQBgEAAAAAADAGBAAAAAAAQAYBAAAAAAFABgQAAAAAAFAGAwAA" +
		"AAAAYAYDAAAAAAFgBgIAAAAACqAMBAAAAAAAwAwBAAAAAADgDAEAAAAAAPAMAgAAAAAB8AwBAAAA" +
		"AAAADQQAAAAAAgANAgAAAAAAQA0CAAAAAANADQEAAAAAAGANAQAAAAAAcA0EAAAAAACQDQUAAAAA" +
		"ApANBAAAAAADkA0BAAAAAACgDQQAAAAAALANBQAAAAAAwA0EAAAAAAHADQEAAAAAAOANAgAAAAAA" +
		"8A0BAAAAAAAgDgMAAAAAAiAOBAAAAAAAMA4PAAAAAABADgEAAAAAAFAOAgAAAAABUA4BAAAAAABg" +
		"DgEAAAAAANAOAQAAAAAB0A4FAAAAAALQDgIAAAAAAOAOAQAAAAAAAA8CAAAAAAAQDwEAAAAAACAP" +
		"AQAAAAAAQA8GAAAAAAFADwIAAAAAAHAPAQAAAAAAgA8BAAAAAACQDwIAAAAAAKAPAgAAAAAAwA8F" +
		"AAAAAADQDwIAAAAAAOAPAgAAAAAA8A8CAAAAAAAAEAUAAAAAACAQAQAAAAAAMBABAAAAAABAEAQA" +
		"AAAACkAQBAAAAAAAUBACAAAAAAFQEAEAAAAAAGAQAgAAAAAAgBADAAAAAACQEAgAAAAAALAQCAAA" +
		"AAAAwBAKAAAAAADQEAIAAAAAAdAQAQAAAAAA8BADAAAAAAAQEQoAAAAAACARAQAAAAAAQBEBAAAA" +
		"AABQEQIAAAAAAMARAwAAAAAAEBIBAAAAAACAEgEAAAAAAKASAgAAAAAA8BICAAAAAAAAEwEAAAAA" +
		"ABATAgAAAAAAMBMIAAAAAAFgEwQAAAAAAHATAwAAAAAAEBkDAAAAAABAGQQAAAAAAFAZAgAAAAAB" +
		"YBkCAAAAAABwGRYAAAAAAKAZAQAAAAAAsBkBAAAAAADAGQIAAAAAANAZAgAAAAAAYDIBAAAAAABw" +
		"MgEAAAAAAIAyAgAAAAAA0DIBAAAAAADwMgEAAAAAAAAzAQAAAAAAMDMBAAAAAABAMwEAAAAAAKAz" +
		"AQAAAAAAEDQBAAAAAAAwNQEAAAAAAEA1AQAAAAAAUDUBAAAAAADgNQIAAAAAADA2AQAAAAAAQDYE" +
		"AAAAAABgNgEAAAAAAHA2AgAAAAAAEDcCAAAAAAEQNwIAAAAAAGA3AgAAAAABYDcCAAAAAABAOAEA" +
		"AAAAAFA4AgAAAAAAYDgFAAAAAACQOAIAAAAAAKA4AgAAAAAAwDgDAAAAAADQOAMAAAAAAAA5CAAA" +
		"AAAAEDkBAAAAAAAgOQEAAAAAAEA5AQAAAAAAUDkCAAAAAABgOwEAAAAAAHA7BAAAAAAocDsBAAAA" +
		"AgAAAEgHAAAAAKAATgkAAAABoADEBAAAAAKgAK4DAAAAA6AAMwAAAAAAsADtFgAAAAGwAEAKAAAA" +
		"AMAA9Q4AAAAA0ACfJQAAAADgAJ4hAAAAAeAAcAQAAAAC4AAmAAAAAADwAD8QAAAAAfAAXQ0AAAAC" +
		"8AA5AgAAAAPwAJUAAAAAAAABbgYAAAABAAGsAgAAAAIAAbgCAAAAACABMnsAAAAAMAE8CAAAAAEw" +
		"AYIFAAAAAjABYwAAAAADMAFZAAAAAABAARoFAAAAAFAByAcAAAAAYAFUCAAAAAFgAboCAAAAAmAB" +
		"FgAAAAADYAEqAAAAAABwAcM4AAAAAXABHA8AAAACcAF9BwAAAANwAT4AAAAAAIABvBAAAAABgAES" +
		"BgAAAAKAAVIDAAAAA4ABDQYAAAAAkAFvGgAAAAGQASIFAAAAApABxgUAAAADkAHEAAAAAASQAXYA" +
		"AAAABZABjAAAAAAGkAFMAAAAAACgAa4OAAAAAaAB5ggAAAACoAH0BQAAAACwASYNAAAAAbABwQIA" +
		"AAADsAGLAAAAAADAAWcOAAAAAcABkAMAAAACwAEFAQAAAADQAXsNAAAAAdAB2gkAAAAC0AHoAAAA" +
		"AAPQAS8AAAAAAOABRQ0AAAAB4AHYAQAAAALgAVcPAAAAAPAB5gcAAAAB8AE/AAAAAAAAAmoOAAAA" +
		"ACACwAgAAAABIAK5AAAAAABAAksBAAAAAGACxQgAAAABYAKVCAAAAAJgAiUAAAAAA2ACxgAAAAAA" +
		"cALPCAAAAAFwAowCAAAAAnACeQYAAAADcAIcAgAAAACAAuMLAAAAAYAC5QEAAAACgAJnAAAAAACQ" +
		"AgMNAAAAAZACtAAAAAADkAKIAAAAAASQAnYAAAAAAKACSgAAAAABoAINAAAAAAKgAhEAAAAAALAC" +
		"zAEAAAABsAKGAAAAAADAAoYAAAAAAcACXAAAAAAA4AIAAgAAAAHgAmQBAAAAAuACRgAAAAAA8AI0" +
		"AgAAAAHwAk0BAAAAAAADxgIAAAABAAO4AQAAAAAQA68BAAAAARADYAEAAAAAIANlBAAAAAEgA1EC" +
		"AAAAADAD/AAAAAABMAOPAQAAAAowA44BAAAACzADdwQAAAAUMAMcAwAAABUwAwYLAAAAHjADOAYA" +
		"AAAfMAP5FQAAAABAA+gAAAAAAUADsQAAAAAAUANBAQAAAAFQAyYAAAAAAGAD7wMAAAAAcANaCAAA" +
		"AAFwA68CAAAAAnADsAYAAAAAgAPfCQAAAACQA1cDAAAAAZADJgEAAAACkAMlAAAAAACgA2oOAAAA" +
		"AaADhwQAAAAAsAPbBQAAAADAA88LAAAAAcAD1wAAAAACwAMbAAAAAADQA1UTAAAAAdADgwQAAAAC" +
		"0APJAAAAAAPQA6gBAAAABNADOQAAAAAF0AOWAgAAAAbQAyIAAAAAB9ADRwAAAAAA4AP1DAAAAAHg" +
		"A2ADAAAAAuADowMAAAAD4AO2AAAAAADwAy0CAAAAAAAEUwIAAAAAEAQZAAAAAAEQBAIBAAAAACAE" +
		"qgAAAAAAMAREAQAAAAEwBKsBAAAAAEAE0gAAAAABQASpAAAAAABQBLADAAAAAVAEwgAAAAAAcATc" +
		"AQAAAAFwBIkAAAAAAKAEcgAAAAAA0AQsDgAAAADgBEEAAAAAAeAEMAIAAAAA8ATrAAAAAAHwBE4A" +
		"AAAAAvAElQAAAAAK8AT9AAAAAAvwBFMAAAAADPAEmwAAAAAAAAUXBgAAAAAQBUQDAAAAARAFGgEA" +
		"AAAAIAWWAAAAAAAwBYECAAAAAEAFEAAAAAAAUAWPbAAAAABgBcAHAAAAAHAF8AQAAAABcAVyAAAA" +
		"AACABQ0FAAAAAYAFJAIAAAACgAVQAQAAAACQBXUDAAAAAKAFbgMAAAAAsAWrAQAAAADABR4EAAAA" +
		"AcAFrgAAAAAA0AWSAwAAAAHQBVEAAAAAAOAFnQoAAAAAAAZNAAAAAAAQBokAAAAAACAGiQAAAAAA" +
		"MAaYAgAAAABABqQCAAAAAUAGWQEAAAAAUAbVAAAAAAFQBkAAAAAAAGAGpQEAAAABYAaMAQAAAACQ" +
		"DAEAAAAAAKAMQgAAAAAKoAwqAAAAAACwDAYAAAAAAMAMXQQAAAAA0Ay9BQAAAADgDFoBAAAAAeAM" +
		"3wAAAAAA8AzEAwAAAAHwDAUCAAAAAAANGQ0AAAABAA0iCAAAAAIADSMDAAAAABAN6gQAAAAAIA1x" +
		"BQAAAAAwDc8GAAAAAEAN6QAAAAABQA2GBQAAAAJADQkAAAAAA0ANBgAAAAAEQA0PAAAAAABQDdQA" +
		"AAAAAGANtAIAAAAAcA14AwAAAACADSACAAAAAYANVgIAAAAAkA1nVwAAAAGQDTwEAAAAApANrhcA" +
		"AAADkA1DAAAAAACgDUgAAAAAALANugkAAAAAwA1/EQAAAAHADSwDAAAAANANSQEAAAAA4A14CwAA" +
		"AADwDR8EAAAAAAAOoQEAAAAAEA5cAAAAAAAgDmcGAAAAASAO8QEAAAACIA6SBAAAAAAwDr0cAAAA" +
		"ATAODAAAAAAAQA6aBQAAAABQDjQJAAAAAVAOEgAAAAAAYA45AAAAAABwDrURAAAAAXAOxQYAAAAA" +
		"oA7uCwAAAACwDgYAAAAAAMAOIgAAAAAA0A5CBwAAAAHQDmoDAAAAAtAOtgAAAAAA4A4IAwAAAADw" +
		"DkcDAAAAAAAPAwsAAAABAA+RAAAAAAMADwIAAAAAABAPhAYAAAAAIA/oBAAAAAAwD9sDAAAAAEAP" +
		"MBQAAAABQA8ABAAAAAJAD/oAAAAAAGAPBgIAAAAAcA/PAgAAAACAD/MDAAAAAJAPpwEAAAAAoA+g" +
		"AgAAAACwD98AAAAAAMAP9AgAAAAA0A+XAgAAAADgD9gOAAAAAPAPmwQAAAAAABDCCgAAAAAQEMcB" +
		"AAAAARAQHAAAAAAAIBDsBgAAAAAwEPUAAAAAAEAQeQEAAAAKQBCGCwAAAABQEFICAAAAAVAQUAEA" +
		"AAAAYBDfAQAAAABwECgBAAAAAIAQ7QEAAAAAkBCBAQAAAACgEDgAAAAAALAQ4QEAAAAAwBA/AQAA" +
		"AADQEO8CAAAAAdAQIAAAAAAA4BA3AAAAAADwEOsAAAAAAfAQXwAAAAAAABHWAAAAAAEAEV8AAAAA" +
		"ABARNgAAAAAAIBF+AAAAAAAwEWQAAAAAAEAR2AEAAAAAUBFMBwAAAABgETQAAAAAAHAR7wEAAAAA" +
		"gBHfBgAAAACQEWMQAAAAAKAR1wMAAAAAsBGZAAAAAADAEdoHAAAAANARsAEAAAAA4BGDAwAAAADw" +
		"EVEAAAAAAAASAQMAAAAAEBLEAwAAAAAgEt0FAAAAAHASFwIAAAAAgBKaLgAAAACQElEBAAAAA5AS" +
		"KhYAAAAAoBLNBQAAAACwEvUDAAAAAMASlgkAAAAA0BIaBAAAAADgEpgCAAAAAPASLAoAAAAAABNO" +
		"BQAAAAAQEwkLAAAAACATrhoAAAABIBO5AAAAAAAwEyECAAAAAEATtQIAAAAAUBPFAQAAAABgE/UB" +
		"AAAAAWATTAcAAAAAcBMaBAAAAAAQGdcBAAAAACAZGAAAAAAAMBlvAQAAAABAGU8DAAAAAFAZeAMA" +
		"AAAAYBkZAAAAAAFgGRcAAAAAAHAZIAEAAAAAkBmWAAAAAACgGRECAAAAALAZlQAAAAAAwBm0AAAA" +
		"AABAMgIAAAAAAFAyzgAAAAAAYDLgAAAAAABwMucAAAAAAIAyTQMAAAAAkDIRAAAAAACgMmYFAAAA" +
		"ALAyYQAAAAAAwDLwAAAAAAHAMgcAAAAAANAyrwAAAAAA4DKYAQAAAADwMrsAAAAAAAAzYgAAAAAB" +
		"ADOWAAAAAAAQM8EAAAAAARAzGwAAAAAAIDMCAAAAAAEgMwkAAAAAAiAzdQAAAAAAMDOnAQAAAABA" +
		"M34AAAAAAUAzOQAAAAAAUDOTAAAAAABgM2UAAAAAAHAzUwAAAAAAgDNcAAAAAAGAMxAAAAAAAJAz" +
		"fgAAAAAAoDNdAAAAAACwM4cAAAAAAbAzAQAAAAAAwDNQAAAAAADQM5AAAAAAAdAzAgAAAAAA4DN3" +
		"AAAAAADwMzgAAAAAFPAzcgAAAAABADQiAAAAAAAQNEkBAAAAACA0LgIAAAABIDSfAQAAAAIgNAYA" +
		"AAAAADA0GgAAAAAAQDTSAAAAAABgNC4AAAAAAIA0yAAAAAAAkDSwAAAAAAGQNB4AAAAAAMA0CwAA" +
		"AAABIDWrAAAAAAIgNUoAAAAAADA1nQAAAAAAQDUFAQAAAABQNaEEAAAAAGA1FAAAAAAAcDUHAQAA" +
		"AAFwNQoAAAAAAIA1JAAAAAAAkDUvAAAAAACwNTUAAAAAAMA1RwAAAAAA0DXNAAAAAADgNcIAAAAA" +
		"APA1VwAAAAAAADatAAAAAAAQNkAAAAAAACA2BwAAAAAAMDYCAAAAAABANtYJAAAAAFA2swAAAAAA" +
		"YDY3AgAAAABwNmkAAAAAAIA2WAAAAAAAkDZaAAAAAACgNiEAAAAAALA2DwAAAAAAwDYDAAAAAAHA" +
		"Nm4AAAAAANA2CQAAAAAA4DbpAAAAAADwNpQAAAAAAAA3rgAAAAAAEDc3AwAAAAEQN0kAAAAAACA3" +
		"eQAAAAAAMDf5AAAAAABANzEQAAAAAFA3UgAAAAABUDezAAAAAABgN8cAAAAAAWA34QAAAAAAcDeM" +
		"AAAAAACANxUAAAAAAJA3TwAAAAAAoDcEAQAAAACwNzoCAAAAAbA3RAAAAAAAwDczAAAAAABAOBQA" +
		"AAAAAFA4JwAAAAAAYDglAAAAAABwOBMAAAAAAIA4CwAAAAAAkDgKAAAAAACgOAUAAAAAAMA4cgAA" +
		"AAAA0DgXAAAAAADgOAcAAAAAAPA4CQAAAAAAADlJAAAAABQAOTMAAAAAABA5FgAAAAAAIDkNAAAA" +
		"AAAwOQsAAAAAAEA5HgAAAAAAUDkHAAAAAABgOUAAAAAAAIA5DAAAAAAAYDsBAAAAAABwOycAAAAA" +
		"CnA7MAAAAAAUcDswAAAAAB5wOzAAAAAAKHA7LwAAAAMAAADcBQAAAACgAFIAAAAAAaAAGQAAAAAC" +
		"oAArAAAAAACwAC0AAAAAAbAAGQAAAAAAwAAQAAAAAADgAAEAAAAAAPAAEAAAAAAB8AAMAAAAAAPw" +
		"AAIAAAAAAAABAwAAAAABAAEBAAAAAAIAASQAAAAAACABwQAAAAAAMAFcAAAAAAEwASIAAAAAAEAB" +
		"VAAAAAAAUAEPAAAAAABgAQEAAAAAAHABwQAAAAABcAE0AAAAAAJwAVQAAAAAA3ABAQAAAAAAgAFJ" +
		"AAAAAAGAATQAAAAAAoABHAAAAAADgAELAAAAAACQAacAAAAAAZABDAAAAAACkAEXAAAAAAOQAQQA" +
		"AAAABZABAgAAAAAGkAEBAAAAAACgAQ4AAAAAAaABGAAAAAAAsAEDAAAAAAOwAQMAAAAAAMABPQAA" +
		"AAABwAEPAAAAAALAAQMAAAAAANABMwAAAAAB0AFLAAAAAALQAQIAAAAAA9ABAQAAAAAA4AEGAAAA" +
		"AAHgAQQAAAAAAuABAwAAAAAA8AEEAAAAAAAAAhMAAAAAACACLwAAAAABIAIEAAAAAAAwAg0AAAAA" +
		"ATACHwAAAAACMAIDAAAAAAMwAhEAAAAAAEACDwAAAAAAYAIHAAAAAAFgAhIAAAAAA2ACAwAAAAAA" +
		"cAIwAAAAAAFwAgoAAAAAAnACCAAAAAADcAIkAAAAAACAAh0AAAAAAYACBwAAAAACgAIFAAAAAACQ" +
		"AjQAAAAAAZACEAAAAAACkAICAAAAAAOQAgMAAAAABJACAQAAAAAAsAIuAAAAAAGwAhQAAAAAAMAC" +
		"NgAAAAABwAJqAAAAAADQAjUAAAAAAOACCQAAAAAB4AISAAAAAADwAioAAAAAAfACDgAAAAAAAAMM" +
		"AAAAAAEAAw0AAAAAABADDQAAAAABEAMKAAAAAAAgAw0AAAAAASADBgAAAAAAMAMIAAAAAAEwAwYA" +
		"AAAACzADBgAAAAAUMAMFAAAAABUwAw0AAAAAHjADCAAAAAAfMAMPAAAAAABAAxIAAAAAAUADBwAA" +
		"AAAAYANBAAAAAABwAzUAAAAAAXADIwAAAAACcANCAAAAAACAAwcAAAAAAJADBgAAAAAAoAM6AAAA" +
		"AAGgAxoAAAAAALADBwAAAAAAwANRAAAAAAHAAxAAAAAAANADGQAAAAAB0AMCAAAAAAPQAwIAAAAA" +
		"BtADAwAAAAAA4AMTAAAAAAHgAwQAAAAAAuADFgAAAAAD4AMJAAAAAADwAyUAAAAAAAAEHAAAAAAA" +
		"EAQRAAAAAAEQBAsAAAAAACAECwAAAAAAMAQDAAAAAAEwBAgAAAAAAEAEBwAAAAABQARBAAAAAABQ" +
		"BBgAAAAAAVAEBQAAAAAAcAQJAAAAAAFwBAEAAAAAAKAEBAAAAAAA0AQQAAAAAAHgBBwAAAAAAPAE" +
		"BAAAAAAB8AQBAAAAAALwBAcAAAAACvAEDAAAAAAL8AQGAAAAAAzwBAUAAAAAAAAFEwAAAAAAEAUr" +
		"AAAAAAEQBU0AAAAAACAFBAAAAAAAMAUHAAAAAABABQUAAAAAAFAF6wEAAAAAYAUVAAAAAABwBSoA" +
		"AAAAAIAFAQAAAAABgAUGAAAAAAKABQMAAAAAAJAFHwAAAAAAsAUBAAAAAADQBUYAAAAAAdAFAQAA" +
		"AAAA4AU+AAAAAAAABlgAAAAAABAGGQAAAAAAIAYDAAAAAAAwBkoAAAAAAEAGFAAAAAABQAYUAAAA" +
		"AABQBhcAAAAAAVAGCwAAAAAAYAYwAAAAAAFgBicAAAAAAJAMAwAAAAAAsAwDAAAAAADADAcAAAAA" +
		"ANAMAQAAAAAA4AwKAAAAAAHgDAUAAAAAAPAMOAAAAAAB8AwfAAAAAAAADR4AAAAAAQANFwAAAAAC" +
		"AA0JAAAAAAAQDQgAAAAAACANDAAAAAAAMA0GAAAAAABADVMAAAAAAUANCQAAAAACQA0DAAAAAANA" +
		"DQsAAAAAAFANMQAAAAAAYA0JAAAAAABwDSIAAAAAAIANAQAAAAABgA0DAAAAAACQDWcAAAAAAZAN" +
		"BwAAAAACkA0xAAAAAACgDVMAAAAAALANRgAAAAAAwA1kAAAAAAHADRYAAAAAANANAQAAAAAA4A0m" +
		"AAAAAADwDQsAAAAAAAAOBwAAAAAAEA4FAAAAAAAgDhsAAAAAASAOAwAAAAACIA4mAAAAAAAwDh0A" +
		"AAAAAEAOCQAAAAAAUA4HAAAAAABgDgMAAAAAAHAODAAAAAABcA4VAAAAAACgDkgAAAAAANAOGAAA" +
		"AAAB0A4lAAAAAALQDggAAAAAAPAOFAAAAAAAAA8IAAAAAAEADwEAAAAAABAPNQAAAAAAMA8BAAAA" +
		"AABADxcAAAAAAUAPBQAAAAAAYA8MAAAAAABwDwEAAAAAAIAPBAAAAAAAkA8OAAAAAACgDx0AAAAA" +
		"ALAPBgAAAAAAwA84AAAAAADQDwUAAAAAAOAPNgAAAAAA8A8VAAAAAAAAEEIAAAAAABAQBAAAAAAA" +
		"IBALAAAAAAAwEAEAAAAAAEAQJgAAAAAKQBA9AAAAAABQECQAAAAAAVAQEgAAAAAAYBAGAAAAAABw" +
		"EAkAAAAAAIAQTAAAAAAAkBA2AAAAAACwEEYAAAAAAMAQWAAAAAAA0BAeAAAAAAHQEAQAAAAAAPAQ" +
		"HwAAAAAB8BAGAAAAAAAAET8AAAAAAQAREAAAAAAAEBEQAAAAAAAgEQ8AAAAAADARAQAAAAAAQBEO" +
		"AAAAAABQERcAAAAAAGARAQAAAAAAcBECAAAAAACAEQUAAAAAAJARHAAAAAAAoBEBAAAAAACwEQEA" +
		"AAAAAMAREwAAAAAA0BEaAAAAAADgEQgAAAAAAPAREgAAAAAAABIFAAAAAAAQEg0AAAAAACASBgAA" +
		"AAAAgBJFAAAAAACQEgMAAAAAA5ASHQAAAAAAsBIKAAAAAADAEg4AAAAAANASBgAAAAAA8BIZAAAA" +
		"AAAAEw4AAAAAABATHQAAAAAAMBMYAAAAAABAEwIAAAAAAFATAQAAAAAAYBMCAAAAAAFgEwcAAAAA" +
		"AHATJgAAAAAAEBklAAAAAAAgGQ0AAAAAADAZDQAAAAAAQBkSAAAAAABQGRcAAAAAAGAZCAAAAAAB" +
		"YBkSAAAAAABwGZ0AAAAAAJAZBQAAAAAAoBk1AAAAAACwGQsAAAAAAMAZYwAAAAAA0BkBAAAAAABA" +
		"MgEAAAAAAGAyAQAAAAAAcDIHAAAAAACgMg4AAAAAANAyAwAAAAAA4DIHAAAAAADwMgYAAAAAAQAz" +
		"BQAAAAAAIDMGAAAAAAIgMwgAAAAAADAzBwAAAAAAQDMCAAAAAAFAMwEAAAAAAGAzAgAAAAAAcDMB" +
		"AAAAAACAMwEAAAAAAKAzBQAAAAAAsDMCAAAAABTwMwEAAAAAAQA0AQAAAAAAEDQEAAAAAAAgNA8A" +
		"AAAAASA0KAAAAAAAQDQNAAAAAACANAMAAAAAASA1AQAAAAAAMDUKAAAAAABANQcAAAAAAFA1BAAA" +
		"AAAAYDUCAAAAAABwNQEAAAAAAJA1AgAAAAAAwDUCAAAAAADwNQQAAAAAAAA2DAAAAAAAMDYHAAAA" +
		"AABANhMAAAAAAFA2BAAAAAAAYDYDAAAAAABwNgoAAAAAAcA2BQAAAAAA0DYHAAAAAADgNgMAAAAA" +
		"APA2AgAAAAAAADcJAAAAAAAQNx8AAAAAARA3BQAAAAAAMDcPAAAAAABANxQAAAAAAVA3AgAAAAAA" +
		"YDcOAAAAAAFgNw8AAAAAAHA3BQAAAAAAgDcDAAAAAACQNwIAAAAAAKA3AQAAAAAAsDcIAAAAAAGw" +
		"NwcAAAAAAMA3AQAAAAAA0DcHAAAAAABAOAcAAAAAAFA4AwAAAAAAcDgEAAAAAACQOA4AAAAAAKA4" +
		"BQAAAAAAwDgOAAAAAADQOAEAAAAAAOA4AQAAAAAAADkEAAAAABQAOQQAAAAAABA5AgAAAAAAMDkG" +
		"AAAAAABAOQgAAAAAAFA5AwAAAAAAYDkBAAAAAABgOy4AAAAAAHA7HgAAAAAKcDsGAAAAABRwOwsA" +
		"AAAAHnA7FAAAAAAocDsQAAAAAQAAAHwHAAAAAKAAphAAAAABoAB8CAAAAAKgAOEGAAAAA6AAMwAA" +
		"AAAAsACLHAAAAAGwACEKAAAAAMAA4w4AAAAA0AB2JAAAAADgABghAAAAAeAAYwQAAAAC4AAmAAAA" +
		"AADwAEEQAAAAAfAAOA0AAAAC8ABWAgAAAAPwAJkAAAAAAAABdAYAAAABAAGmAgAAAAIAAb0CAAAA" +
		"ACABRX0AAAAAMAGMHAAAAAEwAbkSAAAAAjABYwAAAAADMAFLAAAAAABAASsFAAAAAFABuQcAAAAA" +
		"YAFRCAAAAAFgAc0CAAAAAmABHwAAAAADYAEpAAAAAABwAY81AAAAAXABHA8AAAACcAGgBwAAAANw" +
		"ATwAAAAAAIABuhAAAAABgAEQBgAAAAKAAVADAAAAA4AB2gUAAAAAkAHdGQAAAAGQARwFAAAAApAB" +
		"wwUAAAADkAGkAAAAAASQAWkAAAAABZABjgAAAAAGkAFKAAAAAACgAWcTAAAAAaABggsAAAACoAHz" +
		"BQAAAACwASkQAAAAAbABvQIAAAADsAF3AAAAAADAAfUOAAAAAcABxAMAAAACwAELAQAAAADQAecN" +
		"AAAAAdAB0QkAAAAC0AH5AAAAAAPQATEAAAAAAOABWQ0AAAAB4AHVAQAAAALgAWQPAAAAAPAB/gcA" +
		"AAAB8AE/AAAAAAAAAooOAAAAACACvAgAAAABIAKyAAAAAAAwAq8IAAAAATACvwQAAAACMALvBwAA" +
		"AAMwAkMFAAAAAEACTgEAAAABQAIDAAAAAABgArgIAAAAAWACvggAAAACYAIkAAAAAANgAsEAAAAA" +
		"AHAC2wgAAAABcAKTAgAAAAJwApcGAAAAA3ACGwIAAAAAgAK6CwAAAAGAAuoBAAAAAoACZQAAAAAA" +
		"kAIeDQAAAAGQArIAAAAAApACWAAAAAADkAKLAAAAAASQAnEAAAAAAKACDgwAAAABoAKwAgAAAAKg" +
		"ApwCAAAAALAC6wEAAAABsAKLAAAAAADAAs4EAAAAAcACChMAAAAA0AJiDAAAAADgAgcCAAAAAeAC" +
		"bAEAAAAC4AJFAAAAAADwAjICAAAAAfACUgEAAAAAAAPWAgAAAAEAA7wBAAAAABADsgEAAAABEANn" +
		"AQAAAAAgA1sEAAAAASADUgIAAAAAMAMFAQAAAAEwA5QBAAAACjADSAEAAAALMANNBAAAABQwA5AC" +
		"AAAAFTADoQoAAAAeMAMgBQAAAB8wAxgVAAAAAEAD7gAAAAABQAOwAAAAAABQA0cBAAAAAVADJQAA" +
		"AAAAYAPwAwAAAABwA4QIAAAAAXAD9QIAAAACcAO+BgAAAACAA/sJAAAAAJADZQMAAAABkAMnAQAA" +
		"AAKQAyUAAAAAAKADiQ4AAAABoAOBBAAAAACwA94FAAAAAMADwAsAAAABwAPWAAAAAALAAzkAAAAA" +
		"ANAD8hIAAAAB0ANnBAAAAALQA7YAAAAAA9ADjAEAAAAE0AM5AAAAAAXQA6sCAAAABtADIgAAAAAH" +
		"0ANGAAAAAADgA5APAAAAAeAD0QMAAAAC4AOdBAAAAAPgA6EAAAAAAPADRwIAAAAAAARUAgAAAAAQ" +
		"BAACAAAAARAE7AEAAAAAIASYAQAAAAAwBEMBAAAAATAEswEAAAAAQATXAAAAAAFABKwAAAAAAFAE" +
		"3gMAAAABUATPAAAAAABwBOwBAAAAAXAEigAAAAAAoAR1AAAAAADQBPkNAAAAAOAEQAAAAAAB4AQ3" +
		"AgAAAArgBMsCAAAAAPAE7AAAAAAB8ARQAAAAAALwBJUAAAAACvAE+wAAAAAL8ARVAAAAAAzwBJwA" +
		"AAAAAAAFGAYAAAAAEAVcAwAAAAEQBRsBAAAAACAFmAAAAAAAMAV7AgAAAABABUsAAAAAAFAFDm0A" +
		"AAAAYAXMBwAAAABwBbwFAAAAAXAFZgAAAAAAgAX+BAAAAAGABSMCAAAAAoAFTAEAAAAAkAVqDAAA" +
		"AACgBXIDAAAAALAFoQEAAAAAwAUyBAAAAAHABaIAAAAAANAFmAMAAAAB0AVMAAAAAADgBZwKAAAA" +
		"AAAGJiQAAAAAEAaIAAAAAAAgBogAAAAAADAGlwIAAAAAQAabAgAAAAFABmMBAAAAAFAGnQIAAAAB" +
		"UAaRAAAAAABgBrEBAAAAAWAGkQEAAAAAkAwdAAAAAACgDPwdAAAACqAMkgkAAAAAsAxZAAAAAADA" +
		"DGoEAAAAANAMxgUAAAAA4AxdAQAAAAHgDOAAAAAAAPAMzAMAAAAB8AwEAgAAAAAADRcNAAAAAQAN" +
		"KA4AAAACAA0hAwAAAAAQDekGAAAAACAN9gkAAAAAMA29BgAAAABADToWAAAAAUAN5gUAAAACQA2m" +
		"AAAAAANADVAAAAAABEANJAAAAAAAUA1lBgAAAABgDccCAAAAAHANcgMAAAAAgA3cBQAAAAGADQgF" +
		"AAAAAJANDVcAAAABkA0dBAAAAAKQDTEWAAAAA5ANQgAAAAAAoA3aFQAAAACwDSgKAAAAAMANgREA" +
		"AAABwA0lAwAAAADQDVEBAAAAAOANtgsAAAAA8A0gBAAAAAAADqUBAAAAABAObgAAAAAAIA5WBgAA" +
		"AAEgDrwDAAAAAiAOdQQAAAAAMA6mHAAAAAEwDgoAAAAAAEAOkwUAAAAAUA5HCQAAAAFQDhIAAAAA" +
		"AGAOOQAAAAAAcA7qEQAAAAFwDtkGAAAAAKAOwAsAAAAAsA6NBQAAAADADn0KAAAAANAORQcAAAAB" +
		"0A5rAwAAAALQDrwAAAAAAOAO+gIAAAAA8A75BwAAAAAADwELAAAAAQAPkQAAAAADAA8CAAAAAAAQ" +
		"D4EGAAAAACAP1QQAAAAAMA/gAwAAAABADxIUAAAAAUAP+wMAAAACQA/8AAAAAABgD/UBAAAAAHAP" +
		"0AIAAAAAgA/mAwAAAACQD8IBAAAAAKAPkwIAAAAAsA/SAAAAAADAD0wJAAAAANAPnQIAAAAA4A8k" +
		"DwAAAADwD6IEAAAAAAAQwAoAAAAAEBAuAwAAAAEQEBgAAAAAACAQ7wYAAAAAMBD0AAAAAABAEIQB" +
		"AAAACkAQmgsAAAAAUBBdAgAAAAFQEF0BAAAAAGAQ8AEAAAAAcBAuAQAAAACAEPkBAAAAAJAQlQEA" +
		"AAAAoBA5AAAAAACwEO0BAAAAAMAQUQEAAAAA0BD6AgAAAAHQEB0AAAAAAOAQOAAAAAAA8BDyAAAA" +
		"AAHwEF8AAAAAAAAR1gAAAAABABFfAAAAAAAQEUMAAAAAACARhQAAAAAAMBF0AAAAAABAEcwBAAAA" +
		"AFARYgcAAAAAYBE3AAAAAABwEfcBAAAAAIAR0QYAAAAAkBFPEAAAAACgEdEDAAAAALARjQAAAAAA" +
		"wBHBBwAAAADQEa8BAAAAAOARbAUAAAAA8BEmAQAAAAAAEgUDAAAAABASxgMAAAAAIBJ6BgAAAABw" +
		"EhACAAAAAIAS2jkAAAAAkBKQAQAAAAOQEkAWAAAAAKAS6QUAAAAAsBL7AwAAAADAEs0JAAAAANAS" +
		"GgQAAAAA4BKPCQAAAADwEjMKAAAAAAATRQUAAAAAEBMDCwAAAAAgE9EkAAAAASATsQAAAAAAMBMz" +
		"AgAAAABAE8YCAAAAAFAT0AEAAAAAYBMgAQAAAAFgE0YHAAAAAHATGwQAAAAAEBnaAQAAAAAgGT4B" +
		"AAAAASAZAQAAAAAAMBlwAQAAAABAGXADAAAAAFAZdQMAAAAAYBkpAAAAAAFgGSYAAAAAAHAZNQEA" +
		"AAAAkBmbAAAAAACgGQMCAAAAALAZmQAAAAAAwBmzCQAAAADQGUcAAAAAAEAyeQAAAAAAUDLsAAAA" +
		"AABgMs0AAAAAAHAyxwAAAAAAgDJ9BAAAAACQMmoBAAAAAKAyBQUAAAAAsDJWAAAAAADAMt8AAAAA" +
		"AcAyBAAAAAAA0DJZAQAAAADgMo0BAAAAAPAy0wIAAAAAADNiAAAAAAEAM40AAAAAABAzrwAAAAAB" +
		"EDMZAAAAAAAgM5gBAAAAASAzBgAAAAACIDNpAAAAAAAwM3EBAAAAAEAzcgAAAAABQDMxAAAAAABQ" +
		"M4QAAAAAAGAzVwAAAAAAcDNMAAAAAACAM1MAAAAAAYAzEAAAAAAAkDNyAAAAAACgM1gAAAAAALAz" +
		"6QAAAAABsDMBAAAAAADAM0gAAAAAANAzhAAAAAAB0DMCAAAAAADgM2gAAAAAAPAzNgAAAAAU8DNw" +
		"AAAAAAEANDcAAAAAABA0SwEAAAAAIDQQAgAAAAEgNI4BAAAAAiA0BgAAAAAAMDQYAAAAAABANNQA" +
		"AAAAAGA0LgAAAAAAgDTMAAAAAACQNJ4AAAAAAZA0HAAAAAAAwDQHAAAAAAAgNTcAAAAAASA1qQAA" +
		"AAACIDVJAAAAAAAwNZcAAAAAAEA1jwEAAAAAUDUqBwAAAABgNRYAAAAAAHA1AwEAAAABcDUHAAAA" +
		"AACANSUAAAAAAJA1LAAAAAAAsDU1AAAAAADANUMAAAAAANA1zQAAAAAA4DXDAAAAAADwNVQAAAAA" +
		"AAA2qAAAAAAAEDY9AAAAAAAgNhwAAAAAADA2GgAAAAAAQDaBCQAAAABQNq8AAAAAAGA2NwIAAAAA" +
		"cDZlAAAAAACANlAAAAAAAJA2VgAAAAAAoDYfAAAAAACwNg8AAAAAAMA2SgAAAAABwDZoAAAAAADQ" +
		"NhADAAAAAOA23wAAAAAA8DaSAAAAAAAAN5sAAAAAABA3JQMAAAABEDc/AAAAAAAgN20AAAAAADA3" +
		"8wAAAAAAQDe7DwAAAABQN1AAAAAAAVA3rgAAAAAAYDfJAAAAAAFgN9wAAAAAAHA3uAEAAAAAgDcW" +
		"AAAAAACQN0UAAAAAAKA3+gAAAAAAsDcyAgAAAAGwN0UAAAAAAMA3MQAAAAAA0Dc1AgAAAABAOBMA" +
		"AAAAAFA4KAAAAAAAYDgpAAAAAABwOBcAAAAAAIA4CgAAAAAAkDgqAAAAAACgOAkAAAAAALA4NgAA" +
		"AAAAwDhuAAAAAADQOBgAAAAAAOA4DwAAAAAA8DgSAAAAAAAAOfAAAAAAFAA5ZgAAAAAAEDkfAAAA" +
		"AAAgOQ4AAAAAADA5CQAAAAAAQDkbAAAAAABQOQkAAAAAAGA5RgAAAAAAgDkMAAAAAABgOzMAAAAA" +
		"AHA7LQAAAAAKcDstAAAAABRwOy0AAAAAHnA7LQAAAAAocDstAAAA"

var (
	referenceOnce    sync.Once
	referenceSection []byte
)

// referenceBestiarySection decodes the bundled snapshot once. A decode
// failure yields nil, which the merge treats as "no reference available".
func referenceBestiarySection() []byte {
	referenceOnce.Do(func() {
		decoded, err := base64.StdEncoding.DecodeString(referenceBestiaryBase64)
		if err != nil {
			return
		}
		referenceSection = decoded
	})

	return referenceSection
}
