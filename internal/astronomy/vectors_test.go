package astronomy

// testRD are the fixed dates of the published reference tables.
var testRD = [...]int64{
	-214193, -61387, 25469, 49217, 171307, 210155, 253427, 369740,
	400085, 434355, 452605, 470160, 473837, 507850, 524156, 544676,
	567118, 569477, 601716, 613424, 626596, 645554, 664224, 671401,
	694799, 704424, 708842, 709409, 709580, 727274, 728714, 744313,
	764652,
}

var ephemerisCorrections = [...]float64{
	0.2141698518518519,
	0.14363257367091617,
	0.11444429141515931,
	0.10718320232694657,
	0.06949806372337948,
	0.05750681225096574,
	0.04475812294339828,
	0.017397257248984357,
	0.012796798891589713,
	0.008869421568656596,
	0.007262628304956149,
	0.005979700330107665,
	0.005740181544555194,
	0.0038756713829057486,
	0.0031575183970409424,
	0.0023931271439193596,
	0.0017316532690131062,
	0.0016698814624679225,
	6.150149905066665e-4,
	1.7716816592592584e-4,
	1.016458530046296e-4,
	1.7152348357870364e-4,
	1.3696411598154996e-4,
	6.153868613872005e-5,
	1.4168812498149138e-5,
	2.767107192307865e-4,
	2.9636802723679223e-4,
	3.028239003387824e-4,
	3.028239003387824e-4,
	6.75088347496296e-4,
	7.128242445629627e-4,
	9.633446296296293e-4,
	0.0029138888888888877,
}

var solarLongitudes = [...]float64{
	119.47343190503307,
	254.2489611345809,
	181.43599673954304,
	188.66392267483752,
	289.0915666249348,
	59.11974154849304,
	228.31455470912624,
	34.46076992887538,
	63.18799596698955,
	2.4575913259759545,
	350.475934906397,
	13.498220866371412,
	37.403920329437824,
	81.02813003520714,
	313.86049865107634,
	19.95443016415811,
	176.05943166351062,
	344.92295174632454,
	79.96492181924987,
	99.30231774304411,
	121.53530416596914,
	88.56742889029556,
	129.289884101192,
	6.146910693067184,
	28.25199345351575,
	151.7806330331332,
	185.94586701843946,
	28.55560762159439,
	193.3478921554779,
	357.15125499424175,
	336.1706924761211,
	228.18487947607719,
	116.43935225951282,
}

var lunarLatitudes = [...]float64{
	2.4527590208461576,
	-4.90223034654341,
	-2.9394693592610484,
	5.001904508580623,
	-3.208909826304433,
	0.894361559890105,
	-3.8633355687979827,
	-2.5224444701068927,
	1.0320696124422062,
	3.005689926794408,
	1.613842956502888,
	4.766740664556875,
	4.899202930916035,
	4.838473946607273,
	2.301475724501815,
	-0.8905637199828537,
	4.7657836433468495,
	-2.737358003826797,
	-4.035652608005429,
	-3.157214517184652,
	-1.8796147336498752,
	-3.379519408995276,
	-4.398341468078228,
	2.099198567294447,
	5.268746128633113,
	-1.6722994521634027,
	4.6820126551666865,
	3.705518210116447,
	2.493964063649065,
	-4.167774638752936,
	-2.873757531859998,
	-4.667251128743298,
	5.138562328560728,
}

var lunarLongitudes = [...]float64{
	244.85390528515035,
	208.85673853696503,
	213.74684265158967,
	292.04624333935743,
	156.81901407583166,
	108.0556329349528,
	39.35609790324581,
	98.56585102192106,
	332.95829627335894,
	92.25965175091615,
	78.13202909213766,
	274.9469953879383,
	128.3628442664409,
	89.51845094326185,
	24.607322526832988,
	53.4859568448797,
	187.89852001941696,
	320.1723620959754,
	314.0425667275923,
	145.47406514043587,
	185.03050779751646,
	142.18913274552065,
	253.74337531953228,
	151.64868501335397,
	287.9877436469169,
	25.626707154435444,
	290.28830064619893,
	189.91314245171338,
	284.93173002623826,
	152.3390442635215,
	51.66226507971774,
	26.68206023138705,
	175.5008226195208,
}

var lunarAltitudesMecca = [...]float64{
	-13.163184128188277,
	-7.281425833096932,
	-77.1499009115812,
	-30.401178593900795,
	71.84857827681589,
	-43.79857984753659,
	40.65320421851649,
	-40.2787255279427,
	29.611156512065406,
	-19.973178784428228,
	-23.740743779700097,
	30.956688013173505,
	-18.88869091014726,
	-32.16116202243495,
	-45.68091943596022,
	-50.292110029959986,
	-54.3453056090807,
	-34.56600009726776,
	44.13198955291821,
	-57.539862986917285,
	-62.08243959461623,
	-54.07209109276471,
	-16.120452006695814,
	23.864594681196934,
	32.95014668614863,
	72.69165128891194,
	-29.849481790038908,
	31.610644151367637,
	-42.21968940776054,
	28.6478092363985,
	-38.95055354031621,
	27.601977078963245,
	-54.85468160086816,
}

var lunarDistances = [...]float64{
	387624532.22874624,
	393677431.9167689,
	402232943.80299366,
	392558548.8426357,
	366799795.8707107,
	365107305.3822873,
	401995197.0122423,
	404025417.6150537,
	377671971.8515077,
	403160628.6150732,
	375160036.9057225,
	369934038.34809774,
	402543074.28064245,
	374847147.6967837,
	403469151.42100906,
	386211365.4436033,
	385336015.6086019,
	400371744.7464432,
	395970218.00750065,
	383858113.5538787,
	389634540.7722341,
	390868707.6609328,
	368015493.693663,
	399800095.77937233,
	404273360.3039046,
	382777325.7053601,
	378047375.3350678,
	385774023.9948239,
	371763698.0990588,
	362461692.8996066,
	394214466.3812425,
	405787977.04490376,
	404202826.42484397,
}

var lunarParallaxesMecca = [...]float64{
	0.9180377088277034,
	0.9208275970231943,
	0.20205836298974478,
	0.8029475944705559,
	0.3103764190238057,
	0.7224552232666479,
	0.6896953754669151,
	0.6900664438899986,
	0.8412721901635796,
	0.8519504336914271,
	0.8916972264563727,
	0.8471706468502866,
	0.8589744596828851,
	0.8253387743371953,
	0.6328154405175959,
	0.60452566100182,
	0.5528114670829496,
	0.7516491660573382,
	0.6624140811593374,
	0.5109678575066725,
	0.4391324179474404,
	0.5486027633624313,
	0.9540023420545446,
	0.835939538308717,
	0.7585615249134946,
	0.284040095327141,
	0.8384425157447107,
	0.8067682261382678,
	0.7279971552035109,
	0.8848306274359499,
	0.720943806048675,
	0.7980998225232075,
	0.5204553405568378,
}

var moonsetsMecca = [...]float64{
	-214192.91577491348,
	-61386.372392431986,
	25469.842646633304,
	49217.03030766261,
	171307.41988615665,
	210155.96578468647,
	253427.2528524993,
	0.0,
	400085.5281194299,
	434355.0524936674,
	452605.0379962325,
	470160.4931771927,
	473837.06032208423,
	507850.8560177605,
	0.0,
	544676.908706548,
	567118.8180096536,
	569477.7141856537,
	601716.4168627897,
	613424.9325031227,
	626596.9563783304,
	645554.9526297608,
	664224.070965863,
	671401.2004198332,
	694799.4892001058,
	704424.4299627786,
	708842.0314145002,
	709409.2245215117,
	0.0,
	727274.2148254914,
	0.0,
	744313.2118589033,
	764652.9631741203,
}

var sunsetsJerusalem = [...]float64{
	-214192.2194436165,
	-61386.30267524347,
	25469.734889564967,
	49217.72851448112,
	171307.70878832813,
	210155.77420199668,
	253427.70087725233,
	369740.7627365203,
	400085.77677703864,
	434355.74808897293,
	452605.7425360138,
	470160.75310216413,
	473837.76440251875,
	507850.7840412511,
	524156.7225351998,
	544676.7561346035,
	567118.7396585084,
	569477.7396636717,
	601716.784057734,
	613424.7870863203,
	626596.781969136,
	645554.7863087669,
	664224.778132625,
	671401.7496876866,
	694799.7602310368,
	704424.7619096127,
	708842.730647343,
	709409.7603906896,
	709580.7240122546,
	727274.745361792,
	728714.734750938,
	744313.699821144,
	764652.7844809336,
}

var newMoonsAtOrAfter = [...]float64{
	-214174.60582868298,
	-61382.99532831192,
	25495.80977675628,
	49238.50244808781,
	171318.43531326813,
	210180.69184966758,
	253442.85936730343,
	369763.74641362444,
	400091.5783431683,
	434376.5781067696,
	452627.1919724953,
	470167.57836052414,
	473858.8532764285,
	507878.6668429224,
	524179.2470620894,
	544702.7538732041,
	567146.5131819838,
	569479.2032589674,
	601727.0335578924,
	613449.7621296605,
	626620.3698017383,
	645579.0767485882,
	664242.8867184789,
	671418.970538101,
	694807.5633711396,
	704433.4911827276,
	708863.5970001582,
	709424.4049294397,
	709602.0826867367,
	727291.2094001573,
	728737.4476913146,
	744329.5739998783,
	764676.1912733881,
}

var obliquities = [...]float64{
	23.766686762858193,
	23.715893268155952,
	23.68649428364133,
	23.678396646319815,
	23.636406172247575,
	23.622930685681105,
	23.607863050353394,
	23.567099369895143,
	23.556410268115442,
	23.544315732982724,
	23.5378658942414,
	23.531656189162007,
	23.53035487913322,
	23.518307553466993,
	23.512526100422757,
	23.50524564635773,
	23.49727762748816,
	23.49643975090472,
	23.48498365949255,
	23.48082101433542,
	23.476136639530452,
	23.469392588649566,
	23.46274905945532,
	23.460194773340504,
	23.451866181318085,
	23.44843969966849,
	23.44686683973517,
	23.446664978744177,
	23.44660409993624,
	23.440304562352033,
	23.43979187336218,
	23.434238093381342,
	23.426996977623215,
}
