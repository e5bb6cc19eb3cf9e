package astronomy

type newMoonTerm struct {
	v, x, y, z float64
	ePow int
}

// newMoonTerms are the periodic corrections to the mean new moon.
var newMoonTerms = [...]newMoonTerm{
	{-0.40720, 0.0, 1.0, 0.0, 0},
	{0.17241, 1.0, 0.0, 0.0, 1},
	{0.01608, 0.0, 2.0, 0.0, 0},
	{0.01039, 0.0, 0.0, 2.0, 0},
	{0.00739, -1.0, 1.0, 0.0, 1},
	{-0.00514, 1.0, 1.0, 0.0, 1},
	{0.00208, 2.0, 0.0, 0.0, 2},
	{-0.00111, 0.0, 1.0, -2.0, 0},
	{-0.00057, 0.0, 1.0, 2.0, 0},
	{0.00056, 1.0, 2.0, 0.0, 1},
	{-0.00042, 0.0, 3.0, 0.0, 0},
	{0.00042, 1.0, 0.0, 2.0, 1},
	{0.00038, 1.0, 0.0, -2.0, 1},
	{-0.00024, -1.0, 2.0, 0.0, 1},
	{-0.00007, 2.0, 1.0, 0.0, 0},
	{0.00004, 0.0, 2.0, -2.0, 0},
	{0.00004, 3.0, 0.0, 0.0, 0},
	{0.00003, 1.0, 1.0, -2.0, 0},
	{0.00003, 0.0, 2.0, 2.0, 0},
	{-0.00003, 1.0, 1.0, 2.0, 0},
	{0.00003, -1.0, 1.0, 2.0, 0},
	{-0.00002, -1.0, 1.0, -2.0, 0},
	{-0.00002, 1.0, 3.0, 0.0, 0},
	{0.00002, 0.0, 4.0, 0.0, 0},
}

type newMoonAdditional struct {
	i, j, l float64
}

// newMoonAdditionals are the planetary arguments of the new moon.
var newMoonAdditionals = [...]newMoonAdditional{
	{251.88, 0.016321, 0.000165},
	{251.83, 26.651886, 0.000164},
	{349.42, 36.412478, 0.000126},
	{84.66, 18.206239, 0.000110},
	{141.74, 53.303771, 0.000062},
	{207.14, 2.453732, 0.000060},
	{154.84, 7.306860, 0.000056},
	{34.52, 27.261239, 0.000047},
	{207.19, 0.121824, 0.000042},
	{291.34, 1.844379, 0.000040},
	{161.72, 24.198154, 0.000037},
	{239.56, 25.513099, 0.000035},
	{331.55, 3.592518, 0.000023},
}

type lunarTerm struct {
	v, w, x, y, z float64
	ePow int
}

// lunarLatitudeTerms are the periodic terms of the lunar latitude.
var lunarLatitudeTerms = [...]lunarTerm{
	{5128122.0, 0.0, 0.0, 0.0, 1.0, 0},
	{280602.0, 0.0, 0.0, 1.0, 1.0, 0},
	{277693.0, 0.0, 0.0, 1.0, -1.0, 0},
	{173237.0, 2.0, 0.0, 0.0, -1.0, 0},
	{55413.0, 2.0, 0.0, -1.0, 1.0, 0},
	{46271.0, 2.0, 0.0, -1.0, -1.0, 0},
	{32573.0, 2.0, 0.0, 0.0, 1.0, 0},
	{17198.0, 0.0, 0.0, 2.0, 1.0, 0},
	{9266.0, 2.0, 0.0, 1.0, -1.0, 0},
	{8822.0, 0.0, 0.0, 2.0, -1.0, 0},
	{8216.0, 2.0, -1.0, 0.0, -1.0, 1},
	{4324.0, 2.0, 0.0, -2.0, -1.0, 0},
	{4200.0, 2.0, 0.0, 1.0, 1.0, 0},
	{-3359.0, 2.0, 1.0, 0.0, -1.0, 1},
	{2463.0, 2.0, -1.0, -1.0, 1.0, 1},
	{2211.0, 2.0, -1.0, 0.0, 1.0, 1},
	{2065.0, 2.0, -1.0, -1.0, -1.0, 1},
	{-1870.0, 0.0, 1.0, -1.0, -1.0, 1},
	{1828.0, 4.0, 0.0, -1.0, -1.0, 0},
	{-1794.0, 0.0, 1.0, 0.0, 1.0, 1},
	{-1749.0, 0.0, 0.0, 0.0, 3.0, 0},
	{-1565.0, 0.0, 1.0, -1.0, 1.0, 1},
	{-1491.0, 1.0, 0.0, 0.0, 1.0, 0},
	{-1475.0, 0.0, 1.0, 1.0, 1.0, 1},
	{-1410.0, 0.0, 1.0, 1.0, -1.0, 1},
	{-1344.0, 0.0, 1.0, 0.0, -1.0, 1},
	{-1335.0, 1.0, 0.0, 0.0, -1.0, 0},
	{1107.0, 0.0, 0.0, 3.0, 1.0, 0},
	{1021.0, 4.0, 0.0, 0.0, -1.0, 0},
	{833.0, 4.0, 0.0, -1.0, 1.0, 0},
	{777.0, 0.0, 0.0, 1.0, -3.0, 0},
	{671.0, 4.0, 0.0, -2.0, 1.0, 0},
	{607.0, 2.0, 0.0, 0.0, -3.0, 0},
	{596.0, 2.0, 0.0, 2.0, -1.0, 0},
	{491.0, 2.0, -1.0, 1.0, -1.0, 1},
	{-451.0, 2.0, 0.0, -2.0, 1.0, 0},
	{439.0, 0.0, 0.0, 3.0, -1.0, 0},
	{422.0, 2.0, 0.0, 2.0, 1.0, 0},
	{421.0, 2.0, 0.0, -3.0, -1.0, 0},
	{-366.0, 2.0, 1.0, -1.0, 1.0, 1},
	{-351.0, 2.0, 1.0, 0.0, 1.0, 1},
	{331.0, 4.0, 0.0, 0.0, 1.0, 0},
	{315.0, 2.0, -1.0, 1.0, 1.0, 1},
	{302.0, 2.0, -2.0, 0.0, -1.0, 2},
	{-283.0, 0.0, 0.0, 1.0, 3.0, 0},
	{-229.0, 2.0, 1.0, 1.0, -1.0, 1},
	{223.0, 1.0, 1.0, 0.0, -1.0, 1},
	{223.0, 1.0, 1.0, 0.0, 1.0, 1},
	{-220.0, 0.0, 1.0, -2.0, -1.0, 1},
	{-220.0, 2.0, 1.0, -1.0, -1.0, 1},
	{-185.0, 1.0, 0.0, 1.0, 1.0, 0},
	{181.0, 2.0, -1.0, -2.0, -1.0, 1},
	{-177.0, 0.0, 1.0, 2.0, 1.0, 1},
	{176.0, 4.0, 0.0, -2.0, -1.0, 0},
	{166.0, 4.0, -1.0, -1.0, -1.0, 1},
	{-164.0, 1.0, 0.0, 1.0, -1.0, 0},
	{132.0, 4.0, 0.0, 1.0, -1.0, 0},
	{-119.0, 1.0, 0.0, -1.0, -1.0, 0},
	{115.0, 4.0, -1.0, 0.0, -1.0, 1},
	{107.0, 2.0, -2.0, 0.0, 1.0, 2},
}

// lunarLongitudeTerms are the periodic terms of the lunar longitude.
var lunarLongitudeTerms = [...]lunarTerm{
	{6288774.0, 0.0, 0.0, 1.0, 0.0, 0},
	{1274027.0, 2.0, 0.0, -1.0, 0.0, 0},
	{658314.0, 2.0, 0.0, 0.0, 0.0, 0},
	{213618.0, 0.0, 0.0, 2.0, 0.0, 0},
	{-185116.0, 0.0, 1.0, 0.0, 0.0, 1},
	{-114332.0, 0.0, 0.0, 0.0, 2.0, 0},
	{58793.0, 2.0, 0.0, -2.0, 0.0, 0},
	{57066.0, 2.0, -1.0, -1.0, 0.0, 1},
	{53322.0, 2.0, 0.0, 1.0, 0.0, 0},
	{45758.0, 2.0, -1.0, 0.0, 0.0, 1},
	{-40923.0, 0.0, 1.0, -1.0, 0.0, 1},
	{-34720.0, 1.0, 0.0, 0.0, 0.0, 0},
	{-30383.0, 0.0, 1.0, 1.0, 0.0, 1},
	{15327.0, 2.0, 0.0, 0.0, -2.0, 0},
	{-12528.0, 0.0, 0.0, 1.0, 2.0, 0},
	{10980.0, 0.0, 0.0, 1.0, -2.0, 0},
	{10675.0, 4.0, 0.0, -1.0, 0.0, 0},
	{10034.0, 0.0, 0.0, 3.0, 0.0, 0},
	{8548.0, 4.0, 0.0, -2.0, 0.0, 0},
	{-7888.0, 2.0, 1.0, -1.0, 0.0, 1},
	{-6766.0, 2.0, 1.0, 0.0, 0.0, 1},
	{-5163.0, 1.0, 0.0, -1.0, 0.0, 0},
	{4987.0, 1.0, 1.0, 0.0, 0.0, 1},
	{4036.0, 2.0, -1.0, 1.0, 0.0, 1},
	{3994.0, 2.0, 0.0, 2.0, 0.0, 0},
	{3861.0, 4.0, 0.0, 0.0, 0.0, 0},
	{3665.0, 2.0, 0.0, -3.0, 0.0, 0},
	{-2689.0, 0.0, 1.0, -2.0, 0.0, 1},
	{-2602.0, 2.0, 0.0, -1.0, 2.0, 0},
	{2390.0, 2.0, -1.0, -2.0, 0.0, 1},
	{-2348.0, 1.0, 0.0, 1.0, 0.0, 0},
	{2236.0, 2.0, -2.0, 0.0, 0.0, 2},
	{-2120.0, 0.0, 1.0, 2.0, 0.0, 1},
	{-2069.0, 0.0, 2.0, 0.0, 0.0, 2},
	{2048.0, 2.0, -2.0, -1.0, 0.0, 2},
	{-1773.0, 2.0, 0.0, 1.0, -2.0, 0},
	{-1595.0, 2.0, 0.0, 0.0, 2.0, 0},
	{1215.0, 4.0, -1.0, -1.0, 0.0, 1},
	{-1110.0, 0.0, 0.0, 2.0, 2.0, 0},
	{-892.0, 3.0, 0.0, -1.0, 0.0, 0},
	{-810.0, 2.0, 1.0, 1.0, 0.0, 1},
	{759.0, 4.0, -1.0, -2.0, 0.0, 1},
	{-713.0, 0.0, 2.0, -1.0, 0.0, 2},
	{-700.0, 2.0, 2.0, -1.0, 0.0, 2},
	{691.0, 2.0, 1.0, -2.0, 0.0, 1},
	{596.0, 2.0, -1.0, 0.0, -2.0, 1},
	{549.0, 4.0, 0.0, 1.0, 0.0, 0},
	{537.0, 0.0, 0.0, 4.0, 0.0, 0},
	{520.0, 4.0, -1.0, 0.0, 0.0, 1},
	{-487.0, 1.0, 0.0, -2.0, 0.0, 0},
	{-399.0, 2.0, 1.0, 0.0, -2.0, 1},
	{-381.0, 0.0, 0.0, 2.0, -2.0, 0},
	{351.0, 1.0, 1.0, 1.0, 0.0, 1},
	{-340.0, 3.0, 0.0, -2.0, 0.0, 0},
	{330.0, 4.0, 0.0, -3.0, 0.0, 0},
	{327.0, 2.0, -1.0, 2.0, 0.0, 1},
	{-323.0, 0.0, 2.0, 1.0, 0.0, 2},
	{299.0, 1.0, 1.0, -1.0, 0.0, 1},
	{294.0, 2.0, 0.0, 3.0, 0.0, 0},
}

// lunarDistanceTerms are the periodic cosine terms of the lunar distance.
var lunarDistanceTerms = [...]lunarTerm{
	{-20905355.0, 0.0, 0.0, 1.0, 0.0, 0},
	{-3699111.0, 2.0, 0.0, -1.0, 0.0, 0},
	{-2955968.0, 2.0, 0.0, 0.0, 0.0, 0},
	{-569925.0, 0.0, 0.0, 2.0, 0.0, 0},
	{48888.0, 0.0, 1.0, 0.0, 0.0, 1},
	{-3149.0, 0.0, 0.0, 0.0, 2.0, 0},
	{246158.0, 2.0, 0.0, -2.0, 0.0, 0},
	{-152138.0, 2.0, -1.0, -1.0, 0.0, 1},
	{-170733.0, 2.0, 0.0, 1.0, 0.0, 0},
	{-204586.0, 2.0, -1.0, 0.0, 0.0, 1},
	{-129620.0, 0.0, 1.0, -1.0, 0.0, 1},
	{108743.0, 1.0, 0.0, 0.0, 0.0, 0},
	{104755.0, 0.0, 1.0, 1.0, 0.0, 1},
	{10321.0, 2.0, 0.0, 0.0, -2.0, 0},
	{0.0, 0.0, 0.0, 1.0, 2.0, 0},
	{79661.0, 0.0, 0.0, 1.0, -2.0, 0},
	{-34782.0, 4.0, 0.0, -1.0, 0.0, 0},
	{-23210.0, 0.0, 0.0, 3.0, 0.0, 0},
	{-21636.0, 4.0, 0.0, -2.0, 0.0, 0},
	{24208.0, 2.0, 1.0, -1.0, 0.0, 1},
	{30824.0, 2.0, 1.0, 0.0, 0.0, 1},
	{-8379.0, 1.0, 0.0, -1.0, 0.0, 0},
	{-16675.0, 1.0, 1.0, 0.0, 0.0, 1},
	{-12831.0, 2.0, -1.0, 1.0, 0.0, 1},
	{-10445.0, 2.0, 0.0, 2.0, 0.0, 0},
	{-11650.0, 4.0, 0.0, 0.0, 0.0, 0},
	{14403.0, 2.0, 0.0, -3.0, 0.0, 0},
	{-7003.0, 0.0, 1.0, -2.0, 0.0, 1},
	{0.0, 2.0, 0.0, -1.0, 2.0, 0},
	{10056.0, 2.0, -1.0, -2.0, 0.0, 1},
	{6322.0, 1.0, 0.0, 1.0, 0.0, 0},
	{-9884.0, 2.0, -2.0, 0.0, 0.0, 2},
	{5751.0, 0.0, 1.0, 2.0, 0.0, 1},
	{0.0, 0.0, 2.0, 0.0, 0.0, 2},
	{-4950.0, 2.0, -2.0, -1.0, 0.0, 2},
	{4130.0, 2.0, 0.0, 1.0, -2.0, 0},
	{0.0, 2.0, 0.0, 0.0, 2.0, 0},
	{-3958.0, 4.0, -1.0, -1.0, 0.0, 1},
	{0.0, 0.0, 0.0, 2.0, 2.0, 0},
	{3258.0, 3.0, 0.0, -1.0, 0.0, 0},
	{2616.0, 2.0, 1.0, 1.0, 0.0, 1},
	{-1897.0, 4.0, -1.0, -2.0, 0.0, 1},
	{-2117.0, 0.0, 2.0, -1.0, 0.0, 2},
	{2354.0, 2.0, 2.0, -1.0, 0.0, 2},
	{0.0, 2.0, 1.0, -2.0, 0.0, 1},
	{0.0, 2.0, -1.0, 0.0, -2.0, 1},
	{-1423.0, 4.0, 0.0, 1.0, 0.0, 0},
	{-1117.0, 0.0, 0.0, 4.0, 0.0, 0},
	{-1571.0, 4.0, -1.0, 0.0, 0.0, 1},
	{-1739.0, 1.0, 0.0, -2.0, 0.0, 0},
	{0.0, 2.0, 1.0, 0.0, -2.0, 1},
	{-4421.0, 0.0, 0.0, 2.0, -2.0, 0},
	{0.0, 1.0, 1.0, 1.0, 0.0, 1},
	{0.0, 3.0, 0.0, -2.0, 0.0, 0},
	{0.0, 4.0, 0.0, -3.0, 0.0, 0},
	{0.0, 2.0, -1.0, 2.0, 0.0, 1},
	{1165.0, 0.0, 2.0, 1.0, 0.0, 2},
	{0.0, 1.0, 1.0, -1.0, 0.0, 1},
	{0.0, 2.0, 0.0, 3.0, 0.0, 0},
	{8752.0, 2.0, 0.0, -1.0, -2.0, 0},
}

type solarTerm struct {
	x, y, z float64
}

// solarLongitudeTerms are the periodic terms of the solar longitude.
var solarLongitudeTerms = [...]solarTerm{
	{403406.0, 270.54861, 0.9287892},
	{195207.0, 340.19128, 35999.1376958},
	{119433.0, 63.91854, 35999.4089666},
	{112392.0, 331.26220, 35998.7287385},
	{3891.0, 317.843, 71998.20261},
	{2819.0, 86.631, 71998.4403},
	{1721.0, 240.052, 36000.35726},
	{660.0, 310.26, 71997.4812},
	{350.0, 247.23, 32964.4678},
	{334.0, 260.87, -19.4410},
	{314.0, 297.82, 445267.1117},
	{268.0, 343.14, 45036.8840},
	{242.0, 166.79, 3.1008},
	{234.0, 81.53, 22518.4434},
	{158.0, 3.50, -19.9739},
	{132.0, 132.75, 65928.9345},
	{129.0, 182.95, 9038.0293},
	{114.0, 162.03, 3034.7684},
	{99.0, 29.8, 33718.148},
	{93.0, 266.4, 3034.448},
	{86.0, 249.2, -2280.773},
	{78.0, 157.6, 29929.992},
	{72.0, 257.8, 31556.493},
	{68.0, 185.1, 149.588},
	{64.0, 69.9, 9037.750},
	{46.0, 8.0, 107997.405},
	{38.0, 197.1, -4444.176},
	{37.0, 250.4, 151.771},
	{32.0, 65.3, 67555.316},
	{29.0, 162.7, 31556.080},
	{28.0, 341.5, -4561.540},
	{27.0, 291.6, 107996.706},
	{27.0, 98.5, 1221.655},
	{25.0, 146.7, 62894.167},
	{24.0, 110.0, 31437.369},
	{21.0, 5.2, 14578.298},
	{21.0, 342.6, -31931.757},
	{20.0, 230.9, 34777.243},
	{18.0, 256.1, 1221.999},
	{17.0, 45.3, 62894.511},
	{14.0, 242.9, -4442.039},
	{13.0, 115.2, 107997.909},
	{13.0, 151.8, 119.066},
	{13.0, 285.3, 16859.071},
	{12.0, 53.3, -4.578},
	{10.0, 126.6, 26895.292},
	{10.0, 205.7, -39.127},
	{10.0, 85.9, 12297.536},
	{10.0, 146.1, 90073.778},
}
